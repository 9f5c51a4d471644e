package service

import "github.com/RubachokBoss/club-meetings/internal/models"

// ComputeReportStats averages duration, invitations and acceptances over the
// meetings. An empty set yields zeros, and the attendance rate is zero
// whenever nobody was invited, even if acceptances were recorded.
func ComputeReportStats(meetings []models.MeetingWithDetails) models.ReportStats {
	stats := models.ReportStats{MeetingCount: len(meetings)}
	if stats.MeetingCount == 0 {
		return stats
	}

	for _, m := range meetings {
		stats.TotalDuration += m.Duration
		stats.TotalInvited += m.InvitedStudents
		stats.TotalAccepted += m.AcceptedInvitations
	}

	count := float64(stats.MeetingCount)
	stats.AvgDuration = float64(stats.TotalDuration) / count
	stats.AvgInvited = float64(stats.TotalInvited) / count
	stats.AvgAccepted = float64(stats.TotalAccepted) / count

	if stats.TotalInvited > 0 {
		stats.AvgAttendanceRate = float64(stats.TotalAccepted) / float64(stats.TotalInvited) * 100
	}

	return stats
}
