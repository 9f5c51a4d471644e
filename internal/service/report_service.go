package service

import (
	"context"

	"github.com/RubachokBoss/club-meetings/internal/models"
	"github.com/RubachokBoss/club-meetings/internal/repository"
	"github.com/rs/zerolog"
)

type ReportService interface {
	GenerateReport(ctx context.Context, req *models.ReportRequest) (*models.MeetingReport, error)
}

type reportService struct {
	meetingRepo repository.MeetingRepository
	roomRepo    repository.RoomRepository
	clubRepo    repository.ClubRepository
	logger      zerolog.Logger
}

func NewReportService(
	meetingRepo repository.MeetingRepository,
	roomRepo repository.RoomRepository,
	clubRepo repository.ClubRepository,
	logger zerolog.Logger,
) ReportService {
	return &reportService{
		meetingRepo: meetingRepo,
		roomRepo:    roomRepo,
		clubRepo:    clubRepo,
		logger:      logger,
	}
}

func (s *reportService) GenerateReport(ctx context.Context, req *models.ReportRequest) (*models.MeetingReport, error) {
	filter, err := ParseReportFilter(req)
	if err != nil {
		return nil, err
	}

	meetings, err := s.meetingRepo.Search(ctx, filter)
	if err != nil {
		return nil, storeError("search meetings", err)
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("get rooms", err)
	}

	clubs, err := s.clubRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("get clubs", err)
	}

	report := &models.MeetingReport{
		Meetings:    meetings,
		ReportStats: ComputeReportStats(meetings),
		Rooms:       rooms,
		Clubs:       clubs,
	}

	s.logger.Debug().
		Int("meeting_count", report.MeetingCount).
		Float64("avg_attendance_rate", report.AvgAttendanceRate).
		Msg("Meeting report generated")

	return report, nil
}
