package httpd

import (
	"net/http"

	"github.com/RubachokBoss/club-meetings/internal/models"
)

func (h *Handler) GetMeetingReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ReportRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Room:      query.Get("room"),
		Club:      query.Get("club"),
	}

	report, err := h.reportService.GenerateReport(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, report)
}
