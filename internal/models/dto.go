package models

// Data Transfer Objects

type CreateStudentRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// MeetingRequest carries raw meeting fields as submitted by a JSON body or an
// HTML form. Numbers arrive as strings and are parsed by the service. A nil
// RoomID or ClubID leaves the reference untouched on update; an empty one
// clears it.
type MeetingRequest struct {
	Date                string   `json:"date" validate:"required"`
	Time                string   `json:"time" validate:"required"`
	Description         string   `json:"description" validate:"max=200"`
	Duration            string   `json:"duration" validate:"required"`
	Organizers          []string `json:"organizers"`
	Attendees           string   `json:"attendees,omitempty"`
	InvitedStudents     string   `json:"invited_students,omitempty"`
	AcceptedInvitations string   `json:"accepted_invitations,omitempty"`
	RoomID              *string  `json:"room_id,omitempty"`
	ClubID              *string  `json:"club_id,omitempty"`
}

type ReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Room      string `json:"room"`
	Club      string `json:"club"`
}

type MeetingsResponse struct {
	Meetings []MeetingWithDetails `json:"meetings"`
	Total    int                  `json:"total"`
}

type StudentsResponse struct {
	Students []Student `json:"students"`
	Total    int       `json:"total"`
}
