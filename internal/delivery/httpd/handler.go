package httpd

import (
	"context"
	"net/http"
	"time"

	"github.com/RubachokBoss/club-meetings/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	studentService service.StudentService
	meetingService service.MeetingService
	reportService  service.ReportService
	catalogService service.CatalogService
	store          Pinger
	logger         zerolog.Logger
}

func NewHandler(
	studentService service.StudentService,
	meetingService service.MeetingService,
	reportService service.ReportService,
	catalogService service.CatalogService,
	store Pinger,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		studentService: studentService,
		meetingService: meetingService,
		reportService:  reportService,
		catalogService: catalogService,
		store:          store,
		logger:         logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api/v1", func(api chi.Router) {
		api.Route("/students", func(r chi.Router) {
			r.Post("/", h.CreateStudent)
			r.Get("/", h.GetAllStudents)
			r.Get("/{id}", h.GetStudentByID)
			r.Delete("/{id}", h.DeleteStudent)
		})

		api.Route("/meetings", func(r chi.Router) {
			r.Post("/", h.CreateMeeting)
			r.Get("/", h.GetAllMeetings)
			r.Get("/{id}", h.GetMeetingByID)
			r.Put("/{id}", h.UpdateMeeting)
			r.Delete("/{id}", h.DeleteMeeting)
		})

		api.Get("/rooms", h.GetAllRooms)
		api.Get("/clubs", h.GetAllClubs)

		api.Get("/reports/meetings", h.GetMeetingReport)
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "club-meetings",
		"database":  "up",
		"timestamp": time.Now().UTC(),
	}

	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			h.logger.Error().Err(err).Msg("Database ping failed")
			response["status"] = "unhealthy"
			response["database"] = "down"
			writeJSON(w, http.StatusServiceUnavailable, response)
			return
		}
	}

	writeJSON(w, http.StatusOK, response)
}
