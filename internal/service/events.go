package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/club-meetings/internal/models"
	"github.com/RubachokBoss/club-meetings/internal/service/integration"
)

// publishEvent announces a committed change. Publishing failures are logged
// and never undo or fail the change itself.
func publishEvent(ctx context.Context, publisher integration.EventPublisher, logger zerolog.Logger, eventType models.EventType, entityID int64) {
	if publisher == nil {
		return
	}

	event := &models.DomainEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Error().
			Err(err).
			Str("event_type", eventType.String()).
			Int64("entity_id", entityID).
			Msg("Failed to publish domain event")
	}
}
