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
	"github.com/RubachokBoss/club-meetings/internal/repository/mocks"
	"github.com/RubachokBoss/club-meetings/internal/service"
	pubmocks "github.com/RubachokBoss/club-meetings/internal/service/integration/mocks"
)

func newStudentService() (service.StudentService, *mocks.StudentRepository, *pubmocks.EventPublisher) {
	repo := new(mocks.StudentRepository)
	publisher := new(pubmocks.EventPublisher)
	return service.NewStudentService(repo, publisher, zerolog.Nop()), repo, publisher
}

func TestStudentService_CreateStudent_Success(t *testing.T) {
	svc, repo, publisher := newStudentService()
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(s *models.Student) bool {
		return s.Name == "Ada Lovelace"
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Student).ID = 11
		}).
		Return(nil).
		Once()
	publisher.On("Publish", ctx, eventOf(models.EventStudentCreated, 11)).Return(nil).Once()

	student, err := svc.CreateStudent(ctx, &models.CreateStudentRequest{Name: "  Ada Lovelace "})

	require.NoError(t, err)
	assert.Equal(t, int64(11), student.ID)
	assert.Equal(t, "Ada Lovelace", student.Name)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestStudentService_CreateStudent_ValidationErrors(t *testing.T) {
	cases := map[string]*models.CreateStudentRequest{
		"nil request": nil,
		"empty name":  {Name: ""},
		"blank name":  {Name: "   "},
		"long name":   {Name: strings.Repeat("n", 101)},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			svc, repo, _ := newStudentService()

			_, err := svc.CreateStudent(context.Background(), req)

			require.Error(t, err)
			assert.True(t, errors.Is(err, service.ErrValidation))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestStudentService_CreateStudent_StoreFailure(t *testing.T) {
	svc, repo, publisher := newStudentService()
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	repo.On("Create", ctx, mock.Anything).Return(dbErr).Once()

	_, err := svc.CreateStudent(ctx, &models.CreateStudentRequest{Name: "Ada"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrStore))
	assert.True(t, errors.Is(err, dbErr))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestStudentService_DeleteStudent(t *testing.T) {
	t.Run("existing student", func(t *testing.T) {
		svc, repo, publisher := newStudentService()
		ctx := context.Background()

		repo.On("Delete", ctx, int64(4)).Return(true, nil).Once()
		publisher.On("Publish", ctx, eventOf(models.EventStudentDeleted, 4)).Return(nil).Once()

		require.NoError(t, svc.DeleteStudent(ctx, 4))
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("missing student is a no-op", func(t *testing.T) {
		svc, repo, publisher := newStudentService()
		ctx := context.Background()

		repo.On("Delete", ctx, int64(4)).Return(false, nil).Once()

		require.NoError(t, svc.DeleteStudent(ctx, 4))
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo, _ := newStudentService()
		ctx := context.Background()

		repo.On("Delete", ctx, int64(4)).Return(false, errors.New("tx aborted")).Once()

		err := svc.DeleteStudent(ctx, 4)

		require.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrStore))
	})
}

func TestStudentService_GetStudentByID(t *testing.T) {
	svc, repo, _ := newStudentService()
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&models.Student{ID: 1, Name: "Ada"}, nil).Once()
	repo.On("GetByID", ctx, int64(2)).Return(nil, nil).Once()

	student, err := svc.GetStudentByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", student.Name)

	_, err = svc.GetStudentByID(ctx, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotFound))
}
