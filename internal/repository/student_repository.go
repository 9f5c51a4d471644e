package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/club-meetings/internal/models"
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]models.Student, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type studentRepository struct {
	*PostgresRepository
}

func NewStudentRepository(db *sql.DB, logger zerolog.Logger) StudentRepository {
	return &studentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name)
		VALUES ($1)
		RETURNING id
	`

	if err := r.db.QueryRowContext(ctx, query, student.Name).Scan(&student.ID); err != nil {
		r.logStoreError(err, "students.create")
		return err
	}

	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name
		FROM students
		WHERE id = $1
	`

	student := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return student, err
}

func (r *studentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, name
		FROM students
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.ID, &student.Name); err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// Delete removes the student and every organizer link pointing at it. A
// missing student is not an error; the returned flag reports whether a row
// was removed.
func (r *studentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM meeting_organizers WHERE student_id = $1`, id); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
		if err != nil {
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		deleted = affected > 0

		return nil
	})
	if err != nil {
		r.logStoreError(err, "students.delete")
		return false, err
	}

	return deleted, nil
}
