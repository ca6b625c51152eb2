package handler

import (
	"errors"
	"net/http"

	scholarshipsdomain "estudios-app-go/internal/domain/scholarships"
	studiesdomain "estudios-app-go/internal/domain/studies"
	"estudios-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type assignScholarshipRequest struct {
	StudentID  string `json:"student_id"`
	Percentage int    `json:"percentage"`
}

func (h *Handlers) AssignScholarship(w http.ResponseWriter, r *http.Request) {
	studyID := chi.URLParam(r, "study_id")

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req assignScholarshipRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	scholarship, err := h.Scholarships.Assign(r.Context(), scholarshipsdomain.AssignInput{
		StudyID:    studyID,
		StudentID:  req.StudentID,
		Percentage: req.Percentage,
		AssignedBy: user.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, studiesdomain.ErrStudyNotFound):
			// Non-approved studies surface the same way as missing ones.
			writeNotFound(w)
		case errors.Is(err, scholarshipsdomain.ErrInvalidPercentage):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, scholarshipsdomain.ErrAlreadyAssigned):
			writeError(w, http.StatusConflict, "already_assigned", "study already has a scholarship")
		default:
			h.log.InternalError("scholarships.assign: assign failed", err, "study_id", studyID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, scholarship)
}

func (h *Handlers) GetScholarship(w http.ResponseWriter, r *http.Request) {
	studyID := chi.URLParam(r, "study_id")

	scholarship, err := h.Scholarships.GetByStudy(r.Context(), studyID)
	if err != nil {
		if errors.Is(err, scholarshipsdomain.ErrScholarshipNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("scholarships.get: get failed", err, "study_id", studyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, scholarship)
}

func (h *Handlers) ScholarshipLetter(w http.ResponseWriter, r *http.Request) {
	studyID := chi.URLParam(r, "study_id")

	letter, err := h.Scholarships.LetterFigures(r.Context(), studyID)
	if err != nil {
		switch {
		case errors.Is(err, studiesdomain.ErrStudyNotFound),
			errors.Is(err, scholarshipsdomain.ErrScholarshipNotFound):
			writeNotFound(w)
		default:
			h.log.InternalError("scholarships.letter: figures failed", err, "study_id", studyID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, letter)
}
