package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RubachokBoss/club-meetings/internal/models"
	"github.com/RubachokBoss/club-meetings/internal/repository"
	"github.com/RubachokBoss/club-meetings/internal/repository/mocks"
	"github.com/RubachokBoss/club-meetings/internal/service"
	pubmocks "github.com/RubachokBoss/club-meetings/internal/service/integration/mocks"
)

func newMeetingService() (service.MeetingService, *mocks.MeetingRepository, *pubmocks.EventPublisher) {
	repo := new(mocks.MeetingRepository)
	publisher := new(pubmocks.EventPublisher)
	return service.NewMeetingService(repo, publisher, zerolog.Nop()), repo, publisher
}

func eventOf(eventType models.EventType, id int64) interface{} {
	return mock.MatchedBy(func(e *models.DomainEvent) bool {
		return e.Type == eventType && e.EntityID == id && e.EventID != "" && !e.OccurredAt.IsZero()
	})
}

func validMeetingRequest() *models.MeetingRequest {
	return &models.MeetingRequest{
		Date:        "2024-05-14",
		Time:        "16:30",
		Description: "Spring planning",
		Duration:    "45",
		Organizers:  []string{"1", "2", "2"},
	}
}

func TestMeetingService_CreateMeeting_Success(t *testing.T) {
	svc, repo, publisher := newMeetingService()
	ctx := context.Background()

	stored := &models.MeetingWithDetails{
		Meeting:    models.Meeting{ID: 7, Date: "2024-05-14", Time: "16:30", Duration: 45},
		Organizers: []models.Student{{ID: 1, Name: "Ada"}},
	}

	repo.On("Create", ctx, mock.MatchedBy(func(in *models.MeetingInput) bool {
		return in.DateString() == "2024-05-14" &&
			in.TimeString() == "16:30" &&
			in.Duration == 45 &&
			in.Description == "Spring planning" &&
			in.Attendees == nil && in.RoomID == nil &&
			assert.ObjectsAreEqual([]int64{1, 2}, in.OrganizerIDs)
	})).Return(int64(7), nil).Once()
	repo.On("GetByID", ctx, int64(7)).Return(stored, nil).Once()
	publisher.On("Publish", ctx, eventOf(models.EventMeetingCreated, 7)).Return(nil).Once()

	meeting, err := svc.CreateMeeting(ctx, validMeetingRequest())

	require.NoError(t, err)
	assert.Equal(t, stored, meeting)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestMeetingService_CreateMeeting_OptionalFields(t *testing.T) {
	svc, repo, publisher := newMeetingService()
	ctx := context.Background()

	req := validMeetingRequest()
	req.Organizers = nil
	req.InvitedStudents = "12"
	req.AcceptedInvitations = "15"
	room := "3"
	req.RoomID = &room

	repo.On("Create", ctx, mock.MatchedBy(func(in *models.MeetingInput) bool {
		return in.InvitedStudents != nil && *in.InvitedStudents == 12 &&
			in.AcceptedInvitations != nil && *in.AcceptedInvitations == 15 &&
			in.RoomID != nil && *in.RoomID == 3 &&
			in.ClubID == nil &&
			len(in.OrganizerIDs) == 0
	})).Return(int64(8), nil).Once()
	repo.On("GetByID", ctx, int64(8)).Return(&models.MeetingWithDetails{Meeting: models.Meeting{ID: 8}}, nil).Once()
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	_, err := svc.CreateMeeting(ctx, req)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMeetingService_CreateMeeting_ValidationErrors(t *testing.T) {
	cases := map[string]func(r *models.MeetingRequest){
		"bad date":             func(r *models.MeetingRequest) { r.Date = "14/05/2024" },
		"missing date":         func(r *models.MeetingRequest) { r.Date = "" },
		"bad time":             func(r *models.MeetingRequest) { r.Time = "4pm" },
		"seconds in time":      func(r *models.MeetingRequest) { r.Time = "16:30:00" },
		"non-integer duration": func(r *models.MeetingRequest) { r.Duration = "1.5" },
		"missing duration":     func(r *models.MeetingRequest) { r.Duration = "" },
		"long description":     func(r *models.MeetingRequest) { r.Description = strings.Repeat("x", 201) },
		"bad organizer id":     func(r *models.MeetingRequest) { r.Organizers = []string{"1", "bob"} },
		"bad attendees":        func(r *models.MeetingRequest) { r.Attendees = "many" },
		"bad club id":          func(r *models.MeetingRequest) { r.ClubID = strPtr("chess") },
		"duration overflow":    func(r *models.MeetingRequest) { r.Duration = "3000000000" },
		"year zero":            func(r *models.MeetingRequest) { r.Date = "0000-01-01" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc, repo, publisher := newMeetingService()
			req := validMeetingRequest()
			mutate(req)

			meeting, err := svc.CreateMeeting(context.Background(), req)

			require.Error(t, err)
			assert.Nil(t, meeting)
			assert.True(t, errors.Is(err, service.ErrValidation), "unexpected error: %v", err)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestMeetingService_CreateMeeting_StoreFailure(t *testing.T) {
	svc, repo, publisher := newMeetingService()
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(int64(0), errors.New("insert failed")).Once()

	_, err := svc.CreateMeeting(ctx, validMeetingRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrStore))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestMeetingService_UpdateMeeting_ReplacesOrganizers(t *testing.T) {
	svc, repo, publisher := newMeetingService()
	ctx := context.Background()

	req := validMeetingRequest()
	req.Organizers = []string{"3"}

	repo.On("Update", ctx, int64(5), mock.MatchedBy(func(in *models.MeetingInput) bool {
		return assert.ObjectsAreEqual([]int64{3}, in.OrganizerIDs)
	})).Return(nil).Once()
	repo.On("GetByID", ctx, int64(5)).Return(&models.MeetingWithDetails{
		Meeting:    models.Meeting{ID: 5},
		Organizers: []models.Student{{ID: 3, Name: "Grace"}},
	}, nil).Once()
	publisher.On("Publish", ctx, eventOf(models.EventMeetingUpdated, 5)).Return(nil).Once()

	meeting, err := svc.UpdateMeeting(ctx, 5, req)

	require.NoError(t, err)
	assert.Equal(t, []models.Student{{ID: 3, Name: "Grace"}}, meeting.Organizers)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestMeetingService_CreateMeeting_ReadBackFailureKeepsCommittedMeeting(t *testing.T) {
	svc, repo, publisher := newMeetingService()
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(int64(7), nil).Once()
	repo.On("GetByID", ctx, int64(7)).Return(nil, errors.New("conn reset")).Once()
	publisher.On("Publish", ctx, eventOf(models.EventMeetingCreated, 7)).Return(nil).Once()

	meeting, err := svc.CreateMeeting(ctx, validMeetingRequest())

	require.NoError(t, err)
	require.NotNil(t, meeting)
	assert.Equal(t, int64(7), meeting.ID)
	assert.Equal(t, "2024-05-14", meeting.Date)
	assert.Equal(t, "16:30", meeting.Time)
	assert.Equal(t, 45, meeting.Duration)
	assert.Equal(t, "Spring planning", meeting.Description)
	assert.Empty(t, meeting.Organizers)
	repo.AssertNumberOfCalls(t, "Create", 1)
	publisher.AssertExpectations(t)
}

func TestMeetingService_UpdateMeeting_ReadBackFailureKeepsCommittedMeeting(t *testing.T) {
	svc, repo, publisher := newMeetingService()
	ctx := context.Background()

	req := validMeetingRequest()
	req.InvitedStudents = "14"

	repo.On("Update", ctx, int64(5), mock.Anything).Return(nil).Once()
	repo.On("GetByID", ctx, int64(5)).Return(nil, nil).Once()
	publisher.On("Publish", ctx, eventOf(models.EventMeetingUpdated, 5)).Return(nil).Once()

	meeting, err := svc.UpdateMeeting(ctx, 5, req)

	require.NoError(t, err)
	assert.Equal(t, int64(5), meeting.ID)
	assert.Equal(t, 14, meeting.InvitedStudents)
}

func TestMeetingService_UpdateMeeting_ClearsRoom(t *testing.T) {
	svc, repo, publisher := newMeetingService()
	ctx := context.Background()

	empty := ""
	req := validMeetingRequest()
	req.RoomID = &empty

	repo.On("Update", ctx, int64(5), mock.MatchedBy(func(in *models.MeetingInput) bool {
		return in.ClearRoom && in.RoomID == nil && !in.ClearClub && in.ClubID == nil
	})).Return(nil).Once()
	repo.On("GetByID", ctx, int64(5)).Return(&models.MeetingWithDetails{Meeting: models.Meeting{ID: 5}}, nil).Once()
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	meeting, err := svc.UpdateMeeting(ctx, 5, req)

	require.NoError(t, err)
	assert.Nil(t, meeting.RoomID)
	repo.AssertExpectations(t)
}

func TestMeetingService_UpdateMeeting_NotFound(t *testing.T) {
	svc, repo, publisher := newMeetingService()
	ctx := context.Background()

	repo.On("Update", ctx, int64(404), mock.Anything).Return(repository.ErrMeetingNotFound).Once()

	_, err := svc.UpdateMeeting(ctx, 404, validMeetingRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotFound))
	assert.False(t, errors.Is(err, service.ErrStore))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestMeetingService_UpdateMeeting_ValidatesBeforeWriting(t *testing.T) {
	svc, repo, _ := newMeetingService()

	req := validMeetingRequest()
	req.Time = "25:00"

	_, err := svc.UpdateMeeting(context.Background(), 5, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrValidation))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestMeetingService_UpdateMeeting_StoreFailure(t *testing.T) {
	svc, repo, _ := newMeetingService()
	ctx := context.Background()

	repo.On("Update", ctx, int64(5), mock.Anything).Return(errors.New("deadlock detected")).Once()

	_, err := svc.UpdateMeeting(ctx, 5, validMeetingRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrStore))
}

func TestMeetingService_DeleteMeeting(t *testing.T) {
	t.Run("existing meeting publishes event", func(t *testing.T) {
		svc, repo, publisher := newMeetingService()
		ctx := context.Background()

		repo.On("Delete", ctx, int64(9)).Return(true, nil).Once()
		publisher.On("Publish", ctx, eventOf(models.EventMeetingDeleted, 9)).Return(nil).Once()

		require.NoError(t, svc.DeleteMeeting(ctx, 9))
		publisher.AssertExpectations(t)
	})

	t.Run("missing meeting is a no-op", func(t *testing.T) {
		svc, repo, publisher := newMeetingService()
		ctx := context.Background()

		repo.On("Delete", ctx, int64(9)).Return(false, nil).Once()

		require.NoError(t, svc.DeleteMeeting(ctx, 9))
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail delete", func(t *testing.T) {
		svc, repo, publisher := newMeetingService()
		ctx := context.Background()

		repo.On("Delete", ctx, int64(9)).Return(true, nil).Once()
		publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

		require.NoError(t, svc.DeleteMeeting(ctx, 9))
	})
}

func TestMeetingService_GetMeetingByID_NotFound(t *testing.T) {
	svc, repo, _ := newMeetingService()
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(3)).Return(nil, nil).Once()

	_, err := svc.GetMeetingByID(ctx, 3)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotFound))
}
