package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/RubachokBoss/club-meetings/internal/models"
)

// RoomRepository is a testify mock of repository.RoomRepository.
type RoomRepository struct {
	mock.Mock
}

func (m *RoomRepository) GetAll(ctx context.Context) ([]models.Room, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RoomRepository) EnsureByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// ClubRepository is a testify mock of repository.ClubRepository.
type ClubRepository struct {
	mock.Mock
}

func (m *ClubRepository) GetAll(ctx context.Context) ([]models.Club, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Club), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClubRepository) EnsureByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
