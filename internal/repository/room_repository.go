package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/club-meetings/internal/models"
)

type RoomRepository interface {
	GetAll(ctx context.Context) ([]models.Room, error)
	EnsureByName(ctx context.Context, name string) (bool, error)
}

type roomRepository struct {
	*PostgresRepository
}

func NewRoomRepository(db *sql.DB, logger zerolog.Logger) RoomRepository {
	return &roomRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *roomRepository) GetAll(ctx context.Context) ([]models.Room, error) {
	query := `
		SELECT id, name
		FROM rooms
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []models.Room{}
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.Name); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

// EnsureByName inserts the room unless one with the same name exists and
// reports whether a row was added.
func (r *roomRepository) EnsureByName(ctx context.Context, name string) (bool, error) {
	query := `
		INSERT INTO rooms (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		r.logStoreError(err, "rooms.ensure")
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
