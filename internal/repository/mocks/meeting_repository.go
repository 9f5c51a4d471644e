package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/RubachokBoss/club-meetings/internal/models"
)

// MeetingRepository is a testify mock of repository.MeetingRepository.
type MeetingRepository struct {
	mock.Mock
}

func (m *MeetingRepository) Create(ctx context.Context, in *models.MeetingInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MeetingRepository) GetByID(ctx context.Context, id int64) (*models.MeetingWithDetails, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.MeetingWithDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) GetAll(ctx context.Context) ([]models.MeetingWithDetails, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.MeetingWithDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) Search(ctx context.Context, filter models.ReportFilter) ([]models.MeetingWithDetails, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]models.MeetingWithDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) Update(ctx context.Context, id int64, in *models.MeetingInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MeetingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
