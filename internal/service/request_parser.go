package service

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/RubachokBoss/club-meetings/internal/models"
)

// ParseMeetingRequest turns raw meeting fields into a validated input.
// Organizer ids must be integers; whether they name existing students is
// decided by the repository, which drops unknown ones.
func ParseMeetingRequest(req *models.MeetingRequest) (*models.MeetingInput, error) {
	if req == nil {
		return nil, validationError("meeting data is required")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, validationError("date must be in YYYY-MM-DD format")
	}

	clock, err := time.Parse(models.TimeLayout, strings.TrimSpace(req.Time))
	if err != nil {
		return nil, validationError("time must be in HH:MM format")
	}

	if utf8.RuneCountInString(req.Description) > models.MaxDescriptionLength {
		return nil, validationError("description must be at most %d characters", models.MaxDescriptionLength)
	}

	duration, err := parseInt32(req.Duration)
	if err != nil {
		return nil, validationError("duration must be a 32-bit integer")
	}

	in := &models.MeetingInput{
		Date:        date,
		Time:        clock,
		Description: req.Description,
		Duration:    duration,
	}

	if in.Attendees, err = parseOptionalInt(req.Attendees, "attendees"); err != nil {
		return nil, err
	}
	if in.InvitedStudents, err = parseOptionalInt(req.InvitedStudents, "invited_students"); err != nil {
		return nil, err
	}
	if in.AcceptedInvitations, err = parseOptionalInt(req.AcceptedInvitations, "accepted_invitations"); err != nil {
		return nil, err
	}
	if in.RoomID, in.ClearRoom, err = parseReference(req.RoomID, "room_id"); err != nil {
		return nil, err
	}
	if in.ClubID, in.ClearClub, err = parseReference(req.ClubID, "club_id"); err != nil {
		return nil, err
	}

	in.OrganizerIDs, err = parseIDSet(req.Organizers)
	if err != nil {
		return nil, err
	}

	return in, nil
}

// ParseReportFilter builds a filter from optional query values. Empty values
// impose no constraint.
func ParseReportFilter(req *models.ReportRequest) (models.ReportFilter, error) {
	var filter models.ReportFilter
	if req == nil {
		return filter, nil
	}

	if v := strings.TrimSpace(req.StartDate); v != "" {
		date, err := parseDate(v)
		if err != nil {
			return filter, validationError("start_date must be in YYYY-MM-DD format")
		}
		filter.StartDate = &date
	}

	if v := strings.TrimSpace(req.EndDate); v != "" {
		date, err := parseDate(v)
		if err != nil {
			return filter, validationError("end_date must be in YYYY-MM-DD format")
		}
		filter.EndDate = &date
	}

	var err error
	if filter.RoomID, err = parseOptionalID(req.Room, "room"); err != nil {
		return filter, err
	}
	if filter.ClubID, err = parseOptionalID(req.Club, "club"); err != nil {
		return filter, err
	}

	return filter, nil
}

// parseDate accepts YYYY-MM-DD from year 1 on; year 0 is not a valid
// PostgreSQL date.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(models.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	if date.Year() < 1 {
		return time.Time{}, errors.New("year out of range")
	}
	return date, nil
}

// parseInt32 parses values stored in INTEGER columns.
func parseInt32(value string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func parseOptionalInt(value, field string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	n, err := parseInt32(value)
	if err != nil {
		return nil, validationError("%s must be a 32-bit integer", field)
	}

	return &n, nil
}

// parseReference reads an optional room or club id. A missing value leaves
// the reference alone, a blank one asks for it to be cleared.
func parseReference(value *string, field string) (*int64, bool, error) {
	if value == nil {
		return nil, false, nil
	}
	if strings.TrimSpace(*value) == "" {
		return nil, true, nil
	}

	id, err := parseOptionalID(*value, field)
	return id, false, err
}

func parseOptionalID(value, field string) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, validationError("%s must be an integer id", field)
	}

	return &id, nil
}

// parseIDSet parses ids and removes duplicates, keeping first-seen order.
func parseIDSet(values []string) ([]int64, error) {
	ids := make([]int64, 0, len(values))
	seen := make(map[int64]struct{}, len(values))

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, validationError("organizer id %q is not an integer", value)
		}

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}
