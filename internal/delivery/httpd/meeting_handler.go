package httpd

import (
	"net/http"
	"net/url"

	"github.com/RubachokBoss/club-meetings/internal/models"
	"github.com/RubachokBoss/club-meetings/pkg/utils"
)

// decodeMeetingRequest reads a meeting from a JSON body or an HTML form, where
// organizers arrive as a repeated "organizers" field.
func decodeMeetingRequest(r *http.Request) (*models.MeetingRequest, error) {
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		form := r.PostForm
		return &models.MeetingRequest{
			Date:                form.Get("date"),
			Time:                form.Get("time"),
			Description:         form.Get("description"),
			Duration:            form.Get("duration"),
			Organizers:          form["organizers"],
			Attendees:           form.Get("attendees"),
			InvitedStudents:     form.Get("invited_students"),
			AcceptedInvitations: form.Get("accepted_invitations"),
			RoomID:              formValue(form, "room_id"),
			ClubID:              formValue(form, "club_id"),
		}, nil
	}

	var req models.MeetingRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// formValue returns nil when the field was not submitted at all.
func formValue(form url.Values, key string) *string {
	if !form.Has(key) {
		return nil
	}
	v := form.Get(key)
	return &v
}

func (h *Handler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	req, err := decodeMeetingRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	meeting, err := h.meetingService.CreateMeeting(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeCreated(w, meeting)
}

func (h *Handler) GetMeetingByID(w http.ResponseWriter, r *http.Request) {
	meetingID, err := getIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	meeting, err := h.meetingService.GetMeetingByID(r.Context(), meetingID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, meeting)
}

func (h *Handler) GetAllMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.meetingService.GetAllMeetings(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, models.MeetingsResponse{
		Meetings: meetings,
		Total:    len(meetings),
	})
}

func (h *Handler) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	meetingID, err := getIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := decodeMeetingRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	meeting, err := h.meetingService.UpdateMeeting(r.Context(), meetingID, req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, meeting)
}

func (h *Handler) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	meetingID, err := getIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.meetingService.DeleteMeeting(r.Context(), meetingID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Meeting deleted successfully",
	})
}
