package models

import "time"

type EventType string

const (
	EventStudentCreated EventType = "student.created"
	EventStudentDeleted EventType = "student.deleted"
	EventMeetingCreated EventType = "meeting.created"
	EventMeetingUpdated EventType = "meeting.updated"
	EventMeetingDeleted EventType = "meeting.deleted"
)

func (t EventType) String() string {
	return string(t)
}

type DomainEvent struct {
	EventID    string    `json:"event_id"`
	Type       EventType `json:"type"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
