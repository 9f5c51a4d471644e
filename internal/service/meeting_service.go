package service

import (
	"context"
	"errors"

	"github.com/RubachokBoss/club-meetings/internal/models"
	"github.com/RubachokBoss/club-meetings/internal/repository"
	"github.com/RubachokBoss/club-meetings/internal/service/integration"
	"github.com/rs/zerolog"
)

type MeetingService interface {
	CreateMeeting(ctx context.Context, req *models.MeetingRequest) (*models.MeetingWithDetails, error)
	GetMeetingByID(ctx context.Context, id int64) (*models.MeetingWithDetails, error)
	GetAllMeetings(ctx context.Context) ([]models.MeetingWithDetails, error)
	UpdateMeeting(ctx context.Context, id int64, req *models.MeetingRequest) (*models.MeetingWithDetails, error)
	DeleteMeeting(ctx context.Context, id int64) error
}

type meetingService struct {
	meetingRepo repository.MeetingRepository
	publisher   integration.EventPublisher
	logger      zerolog.Logger
}

func NewMeetingService(
	meetingRepo repository.MeetingRepository,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) MeetingService {
	return &meetingService{
		meetingRepo: meetingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *meetingService) CreateMeeting(ctx context.Context, req *models.MeetingRequest) (*models.MeetingWithDetails, error) {
	in, err := ParseMeetingRequest(req)
	if err != nil {
		return nil, err
	}

	id, err := s.meetingRepo.Create(ctx, in)
	if err != nil {
		return nil, storeError("create meeting", err)
	}

	s.logger.Info().
		Int64("meeting_id", id).
		Str("date", in.DateString()).
		Int("organizers_requested", len(in.OrganizerIDs)).
		Msg("Meeting created")

	publishEvent(ctx, s.publisher, s.logger, models.EventMeetingCreated, id)

	return s.readBack(ctx, id, in), nil
}

func (s *meetingService) GetMeetingByID(ctx context.Context, id int64) (*models.MeetingWithDetails, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get meeting", err)
	}
	if meeting == nil {
		return nil, notFoundError("meeting", id)
	}

	return meeting, nil
}

func (s *meetingService) GetAllMeetings(ctx context.Context) ([]models.MeetingWithDetails, error) {
	meetings, err := s.meetingRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("get all meetings", err)
	}

	return meetings, nil
}

// UpdateMeeting overwrites the meeting and replaces its organizer set with the
// requested one.
func (s *meetingService) UpdateMeeting(ctx context.Context, id int64, req *models.MeetingRequest) (*models.MeetingWithDetails, error) {
	in, err := ParseMeetingRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.meetingRepo.Update(ctx, id, in); err != nil {
		if errors.Is(err, repository.ErrMeetingNotFound) {
			return nil, notFoundError("meeting", id)
		}
		return nil, storeError("update meeting", err)
	}

	s.logger.Info().
		Int64("meeting_id", id).
		Int("organizers_requested", len(in.OrganizerIDs)).
		Msg("Meeting updated")

	publishEvent(ctx, s.publisher, s.logger, models.EventMeetingUpdated, id)

	return s.readBack(ctx, id, in), nil
}

// readBack loads a meeting that has just been committed. The write already
// succeeded, so a failed read falls back to the submitted fields without
// organizer or room details instead of failing the call.
func (s *meetingService) readBack(ctx context.Context, id int64, in *models.MeetingInput) *models.MeetingWithDetails {
	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err == nil && meeting != nil {
		return meeting
	}

	s.logger.Warn().
		Err(err).
		Int64("meeting_id", id).
		Msg("Failed to reload committed meeting")

	fallback := in.Meeting(id)
	return &fallback
}

// DeleteMeeting removes the meeting and its organizer links. Deleting an
// unknown id succeeds without effect.
func (s *meetingService) DeleteMeeting(ctx context.Context, id int64) error {
	deleted, err := s.meetingRepo.Delete(ctx, id)
	if err != nil {
		return storeError("delete meeting", err)
	}

	if !deleted {
		s.logger.Debug().Int64("meeting_id", id).Msg("Meeting already absent")
		return nil
	}

	s.logger.Info().Int64("meeting_id", id).Msg("Meeting deleted")
	publishEvent(ctx, s.publisher, s.logger, models.EventMeetingDeleted, id)

	return nil
}
