package httpd

import (
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/RubachokBoss/club-meetings/internal/service"
	"github.com/RubachokBoss/club-meetings/pkg/utils"
)

var errInvalidID = errors.New("id must be a positive integer")

func getIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func isFormRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded"
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	_ = utils.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	response := map[string]interface{}{
		"error": map[string]interface{}{
			"code":    status,
			"message": message,
			"type":    http.StatusText(status),
		},
		"success":   false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, status, response)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeData(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeData(w, http.StatusCreated, data)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	response := map[string]interface{}{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, status, response)
}

// handleServiceError maps the service error kinds onto HTTP statuses. Store
// failures are logged and reported without their details.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
