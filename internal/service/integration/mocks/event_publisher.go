package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/RubachokBoss/club-meetings/internal/models"
)

// EventPublisher is a testify mock of integration.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, event *models.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
