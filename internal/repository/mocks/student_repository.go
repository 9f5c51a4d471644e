package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/RubachokBoss/club-meetings/internal/models"
)

// StudentRepository is a testify mock of repository.StudentRepository.
type StudentRepository struct {
	mock.Mock
}

func (m *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
