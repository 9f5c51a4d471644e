package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/club-meetings/internal/models"
)

type ClubRepository interface {
	GetAll(ctx context.Context) ([]models.Club, error)
	EnsureByName(ctx context.Context, name string) (bool, error)
}

type clubRepository struct {
	*PostgresRepository
}

func NewClubRepository(db *sql.DB, logger zerolog.Logger) ClubRepository {
	return &clubRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *clubRepository) GetAll(ctx context.Context) ([]models.Club, error) {
	query := `
		SELECT id, name
		FROM clubs
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := []models.Club{}
	for rows.Next() {
		var club models.Club
		if err := rows.Scan(&club.ID, &club.Name); err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}

	return clubs, rows.Err()
}

// EnsureByName inserts the club unless one with the same name exists and
// reports whether a row was added.
func (r *clubRepository) EnsureByName(ctx context.Context, name string) (bool, error) {
	query := `
		INSERT INTO clubs (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		r.logStoreError(err, "clubs.ensure")
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
