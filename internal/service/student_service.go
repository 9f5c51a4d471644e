package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/RubachokBoss/club-meetings/internal/models"
	"github.com/RubachokBoss/club-meetings/internal/repository"
	"github.com/RubachokBoss/club-meetings/internal/service/integration"
	"github.com/rs/zerolog"
)

type StudentService interface {
	CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentService struct {
	studentRepo repository.StudentRepository
	publisher   integration.EventPublisher
	logger      zerolog.Logger
}

func NewStudentService(
	studentRepo repository.StudentRepository,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *studentService) CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (*models.Student, error) {
	if req == nil {
		return nil, validationError("name is required")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("name is required")
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return nil, validationError("name must be at most %d characters", models.MaxNameLength)
	}

	student := &models.Student{Name: name}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, storeError("create student", err)
	}

	s.logger.Info().
		Int64("student_id", student.ID).
		Str("name", student.Name).
		Msg("Student created")

	publishEvent(ctx, s.publisher, s.logger, models.EventStudentCreated, student.ID)

	return student, nil
}

func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get student", err)
	}
	if student == nil {
		return nil, notFoundError("student", id)
	}

	return student, nil
}

func (s *studentService) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("get all students", err)
	}

	return students, nil
}

// DeleteStudent removes the student from every organizer set and deletes it.
// Deleting an unknown id succeeds without effect.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	deleted, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return storeError("delete student", err)
	}

	if !deleted {
		s.logger.Debug().Int64("student_id", id).Msg("Student already absent")
		return nil
	}

	s.logger.Info().Int64("student_id", id).Msg("Student deleted")
	publishEvent(ctx, s.publisher, s.logger, models.EventStudentDeleted, id)

	return nil
}
