package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/club-meetings/internal/models"
)

type MeetingRepository interface {
	Create(ctx context.Context, in *models.MeetingInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.MeetingWithDetails, error)
	GetAll(ctx context.Context) ([]models.MeetingWithDetails, error)
	Search(ctx context.Context, filter models.ReportFilter) ([]models.MeetingWithDetails, error)
	Update(ctx context.Context, id int64, in *models.MeetingInput) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type meetingRepository struct {
	*PostgresRepository
}

func NewMeetingRepository(db *sql.DB, logger zerolog.Logger) MeetingRepository {
	return &meetingRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

const selectMeetingsQuery = `
	SELECT
		m.id, to_char(m.date, 'YYYY-MM-DD'), to_char(m.time, 'HH24:MI'),
		COALESCE(m.description, ''), m.duration, m.attendees,
		m.invited_students, m.accepted_invitations,
		m.room_id, m.club_id,
		r.name AS room_name, c.name AS club_name
	FROM meetings m
	LEFT JOIN rooms r ON r.id = m.room_id
	LEFT JOIN clubs c ON c.id = m.club_id
`

func (r *meetingRepository) Create(ctx context.Context, in *models.MeetingInput) (int64, error) {
	query := `
		INSERT INTO meetings (
			date, time, description, duration,
			attendees, invited_students, accepted_invitations,
			room_id, club_id
		) VALUES (
			$1, $2, NULLIF($3, ''), $4,
			COALESCE($5::integer, 0), COALESCE($6::integer, 0), COALESCE($7::integer, 0),
			$8, $9
		)
		RETURNING id
	`

	var id int64
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query,
			in.DateString(),
			in.TimeString(),
			in.Description,
			in.Duration,
			in.Attendees,
			in.InvitedStudents,
			in.AcceptedInvitations,
			in.RoomID,
			in.ClubID,
		).Scan(&id)
		if err != nil {
			return err
		}

		return insertOrganizers(ctx, tx, id, in.OrganizerIDs)
	})
	if err != nil {
		r.logStoreError(err, "meetings.create")
		return 0, err
	}

	return id, nil
}

func (r *meetingRepository) GetByID(ctx context.Context, id int64) (*models.MeetingWithDetails, error) {
	rows, err := r.db.QueryContext(ctx, selectMeetingsQuery+` WHERE m.id = $1`, id)
	if err != nil {
		return nil, err
	}

	meetings, err := scanMeetings(rows)
	if err != nil {
		return nil, err
	}
	if len(meetings) == 0 {
		return nil, nil
	}

	if err := loadOrganizers(ctx, r.db, meetings); err != nil {
		return nil, err
	}

	return &meetings[0], nil
}

func (r *meetingRepository) GetAll(ctx context.Context) ([]models.MeetingWithDetails, error) {
	return r.Search(ctx, models.ReportFilter{})
}

// Search returns meetings matching every non-nil predicate of filter, ordered
// by date, time and id. Date bounds are inclusive.
func (r *meetingRepository) Search(ctx context.Context, filter models.ReportFilter) ([]models.MeetingWithDetails, error) {
	whereClauses := []string{}
	args := []interface{}{}
	argCount := 1

	if filter.StartDate != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("m.date >= $%d", argCount))
		args = append(args, filter.StartDate.Format(models.DateLayout))
		argCount++
	}
	if filter.EndDate != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("m.date <= $%d", argCount))
		args = append(args, filter.EndDate.Format(models.DateLayout))
		argCount++
	}
	if filter.RoomID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("m.room_id = $%d", argCount))
		args = append(args, *filter.RoomID)
		argCount++
	}
	if filter.ClubID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("m.club_id = $%d", argCount))
		args = append(args, *filter.ClubID)
		argCount++
	}

	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf("%s %s ORDER BY m.date, m.time, m.id", selectMeetingsQuery, whereSQL)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	meetings, err := scanMeetings(rows)
	if err != nil {
		return nil, err
	}

	if err := loadOrganizers(ctx, r.db, meetings); err != nil {
		return nil, err
	}

	return meetings, nil
}

// Update overwrites the meeting row and replaces its whole organizer set.
// Counters and references left nil in the input keep their stored values
// unless the input asks to clear the reference.
func (r *meetingRepository) Update(ctx context.Context, id int64, in *models.MeetingInput) error {
	query := `
		UPDATE meetings
		SET date = $1,
			time = $2,
			description = NULLIF($3, ''),
			duration = $4,
			attendees = COALESCE($5::integer, attendees),
			invited_students = COALESCE($6::integer, invited_students),
			accepted_invitations = COALESCE($7::integer, accepted_invitations),
			room_id = CASE WHEN $10::boolean THEN NULL ELSE COALESCE($8::bigint, room_id) END,
			club_id = CASE WHEN $11::boolean THEN NULL ELSE COALESCE($9::bigint, club_id) END
		WHERE id = $12
	`

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var lockedID int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM meetings WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
		if err == sql.ErrNoRows {
			return ErrMeetingNotFound
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, query,
			in.DateString(),
			in.TimeString(),
			in.Description,
			in.Duration,
			in.Attendees,
			in.InvitedStudents,
			in.AcceptedInvitations,
			in.RoomID,
			in.ClubID,
			in.ClearRoom,
			in.ClearClub,
			id,
		)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM meeting_organizers WHERE meeting_id = $1`, id); err != nil {
			return err
		}

		return insertOrganizers(ctx, tx, id, in.OrganizerIDs)
	})
	if err != nil && !errors.Is(err, ErrMeetingNotFound) {
		r.logStoreError(err, "meetings.update")
	}

	return err
}

// Delete removes the meeting with its organizer links. A missing meeting is
// not an error.
func (r *meetingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM meeting_organizers WHERE meeting_id = $1`, id); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM meetings WHERE id = $1`, id)
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
		r.logStoreError(err, "meetings.delete")
		return false, err
	}

	return deleted, nil
}

// insertOrganizers links the meeting to every id that names an existing
// student. Unknown ids match no row and are dropped.
func insertOrganizers(ctx context.Context, q DBTX, meetingID int64, studentIDs []int64) error {
	if len(studentIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO meeting_organizers (meeting_id, student_id)
		SELECT $1, s.id FROM students s WHERE s.id = ANY($2)
		ON CONFLICT DO NOTHING
	`

	_, err := q.ExecContext(ctx, query, meetingID, pq.Array(studentIDs))
	return err
}

func loadOrganizers(ctx context.Context, q DBTX, meetings []models.MeetingWithDetails) error {
	if len(meetings) == 0 {
		return nil
	}

	ids := make([]int64, len(meetings))
	index := make(map[int64]int, len(meetings))
	for i := range meetings {
		ids[i] = meetings[i].ID
		index[meetings[i].ID] = i
		meetings[i].Organizers = []models.Student{}
	}

	query := `
		SELECT mo.meeting_id, s.id, s.name
		FROM meeting_organizers mo
		JOIN students s ON s.id = mo.student_id
		WHERE mo.meeting_id = ANY($1)
		ORDER BY s.name, s.id
	`

	rows, err := q.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var meetingID int64
		var student models.Student
		if err := rows.Scan(&meetingID, &student.ID, &student.Name); err != nil {
			return err
		}
		if i, ok := index[meetingID]; ok {
			meetings[i].Organizers = append(meetings[i].Organizers, student)
		}
	}

	return rows.Err()
}

func scanMeetings(rows *sql.Rows) ([]models.MeetingWithDetails, error) {
	defer rows.Close()

	meetings := []models.MeetingWithDetails{}
	for rows.Next() {
		var m models.MeetingWithDetails
		err := rows.Scan(
			&m.ID,
			&m.Date,
			&m.Time,
			&m.Description,
			&m.Duration,
			&m.Attendees,
			&m.InvitedStudents,
			&m.AcceptedInvitations,
			&m.RoomID,
			&m.ClubID,
			&m.RoomName,
			&m.ClubName,
		)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}

	return meetings, rows.Err()
}
