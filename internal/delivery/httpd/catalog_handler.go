package httpd

import "net/http"

func (h *Handler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.catalogService.GetAllRooms(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"rooms": rooms,
		"total": len(rooms),
	})
}

func (h *Handler) GetAllClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.catalogService.GetAllClubs(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"clubs": clubs,
		"total": len(clubs),
	})
}
