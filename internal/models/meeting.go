package models

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	MaxDescriptionLength = 200
)

type Meeting struct {
	ID                  int64  `json:"id" db:"id"`
	Date                string `json:"date" db:"date"` // YYYY-MM-DD
	Time                string `json:"time" db:"time"` // HH:MM
	Description         string `json:"description" db:"description"`
	Duration            int    `json:"duration" db:"duration"` // minutes
	Attendees           int    `json:"attendees" db:"attendees"`
	InvitedStudents     int    `json:"invited_students" db:"invited_students"`
	AcceptedInvitations int    `json:"accepted_invitations" db:"accepted_invitations"`
	RoomID              *int64 `json:"room_id,omitempty" db:"room_id"`
	ClubID              *int64 `json:"club_id,omitempty" db:"club_id"`
}

type MeetingWithDetails struct {
	Meeting
	RoomName   *string   `json:"room_name,omitempty" db:"room_name"`
	ClubName   *string   `json:"club_name,omitempty" db:"club_name"`
	Organizers []Student `json:"organizers"`
}

// MeetingInput is a parsed and validated meeting write. Nil counters and
// references mean "default" on create and "unchanged" on update. ClearRoom
// and ClearClub unset the reference on update.
type MeetingInput struct {
	Date                time.Time
	Time                time.Time
	Description         string
	Duration            int
	Attendees           *int
	InvitedStudents     *int
	AcceptedInvitations *int
	RoomID              *int64
	ClubID              *int64
	ClearRoom           bool
	ClearClub           bool
	OrganizerIDs        []int64
}

func (in *MeetingInput) DateString() string {
	return in.Date.Format(DateLayout)
}

func (in *MeetingInput) TimeString() string {
	return in.Time.Format(TimeLayout)
}

// Meeting describes the row as written from this input alone. Counters left
// nil are reported as zero.
func (in *MeetingInput) Meeting(id int64) MeetingWithDetails {
	m := MeetingWithDetails{
		Meeting: Meeting{
			ID:          id,
			Date:        in.DateString(),
			Time:        in.TimeString(),
			Description: in.Description,
			Duration:    in.Duration,
			RoomID:      in.RoomID,
			ClubID:      in.ClubID,
		},
		Organizers: []Student{},
	}
	if in.Attendees != nil {
		m.Attendees = *in.Attendees
	}
	if in.InvitedStudents != nil {
		m.InvitedStudents = *in.InvitedStudents
	}
	if in.AcceptedInvitations != nil {
		m.AcceptedInvitations = *in.AcceptedInvitations
	}
	return m
}
