package httpd

import (
	"net/http"

	"github.com/RubachokBoss/club-meetings/internal/models"
	"github.com/RubachokBoss/club-meetings/pkg/utils"
)

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest

	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid form body")
			return
		}
		req.Name = r.PostForm.Get("name")
	} else if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	student, err := h.studentService.CreateStudent(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeCreated(w, student)
}

func (h *Handler) GetStudentByID(w http.ResponseWriter, r *http.Request) {
	studentID, err := getIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	student, err := h.studentService.GetStudentByID(r.Context(), studentID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, student)
}

func (h *Handler) GetAllStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.GetAllStudents(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, models.StudentsResponse{
		Students: students,
		Total:    len(students),
	})
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := getIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.studentService.DeleteStudent(r.Context(), studentID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Student deleted successfully",
	})
}
