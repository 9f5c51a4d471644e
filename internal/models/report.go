package models

import "time"

// ReportFilter is a conjunction of optional predicates over meetings.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	RoomID    *int64
	ClubID    *int64
}

type ReportStats struct {
	MeetingCount      int     `json:"meeting_count"`
	TotalDuration     int     `json:"total_duration"`
	TotalInvited      int     `json:"total_invited"`
	TotalAccepted     int     `json:"total_accepted"`
	AvgDuration       float64 `json:"avg_duration"`
	AvgInvited        float64 `json:"avg_invited"`
	AvgAccepted       float64 `json:"avg_accepted"`
	AvgAttendanceRate float64 `json:"avg_attendance_rate"`
}

type MeetingReport struct {
	Meetings []MeetingWithDetails `json:"meetings"`
	ReportStats
	Rooms []Room `json:"rooms"`
	Clubs []Club `json:"clubs"`
}
