package handler

import (
	"context"
	"errors"
	"net/http"

	studiesdomain "estudios-app-go/internal/domain/studies"
	"estudios-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type createStudyRequest struct {
	FamilyID string `json:"family_id"`
}

type feedbackRequest struct {
	Text string `json:"text"`
}

func (h *Handlers) CreateStudy(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req createStudyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	study, err := h.Studies.Create(r.Context(), req.FamilyID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, studiesdomain.ErrFamilyNotFound):
			h.log.BusinessError("studies.create: family not found", err, "family_id", req.FamilyID)
			writeNotFound(w)
		case errors.Is(err, studiesdomain.ErrFamilyHasStudy):
			writeError(w, http.StatusConflict, "family_has_study", "family already has a study")
		default:
			h.log.InternalError("studies.create: create failed", err, "family_id", req.FamilyID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, study)
}

func (h *Handlers) GetStudy(w http.ResponseWriter, r *http.Request) {
	studyID := chi.URLParam(r, "study_id")

	study, err := h.Studies.Get(r.Context(), studyID)
	if err != nil {
		if errors.Is(err, studiesdomain.ErrStudyNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("studies.get: get failed", err, "study_id", studyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, study)
}

func (h *Handlers) ListStudies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := studiesdomain.ListFilter{
		CapturistaID: query.Get("capturista_id"),
		Status:       query.Get("status"),
	}

	studies, err := h.Studies.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("studies.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, studies)
}

func (h *Handlers) SubmitStudy(w http.ResponseWriter, r *http.Request) {
	h.transitionStudy(w, r, "studies.submit", h.Studies.Submit)
}

func (h *Handlers) ApproveStudy(w http.ResponseWriter, r *http.Request) {
	h.transitionStudy(w, r, "studies.approve", h.Studies.Approve)
}

func (h *Handlers) RecoverStudy(w http.ResponseWriter, r *http.Request) {
	h.transitionStudy(w, r, "studies.recover", h.Studies.Recover)
}

func (h *Handlers) transitionStudy(w http.ResponseWriter, r *http.Request, op string, fn func(ctx context.Context, studyID string) (*studiesdomain.Study, error)) {
	studyID := chi.URLParam(r, "study_id")

	study, err := fn(r.Context(), studyID)
	if err != nil {
		switch {
		case errors.Is(err, studiesdomain.ErrStudyNotFound):
			writeNotFound(w)
		case errors.Is(err, studiesdomain.ErrInvalidTransition):
			writeError(w, http.StatusConflict, "invalid_transition", "study status does not allow this action")
		default:
			h.log.InternalError(op+": transition failed", err, "study_id", studyID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, study)
}

func (h *Handlers) DeleteStudy(w http.ResponseWriter, r *http.Request) {
	studyID := chi.URLParam(r, "study_id")

	if err := h.Studies.SoftDelete(r.Context(), studyID); err != nil {
		if errors.Is(err, studiesdomain.ErrStudyNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("studies.delete: delete failed", err, "study_id", studyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	studyID := chi.URLParam(r, "study_id")

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req feedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	study, err := h.Studies.SubmitFeedback(r.Context(), studyID, user.ID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, studiesdomain.ErrStudyNotFound):
			writeNotFound(w)
		case errors.Is(err, studiesdomain.ErrStudyNotReviewable):
			writeError(w, http.StatusConflict, "not_reviewable", "study status does not allow feedback")
		default:
			h.log.InternalError("studies.feedback: submit failed", err, "study_id", studyID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, study)
}

func (h *Handlers) ListFeedback(w http.ResponseWriter, r *http.Request) {
	studyID := chi.URLParam(r, "study_id")

	feedback, err := h.Studies.ListFeedback(r.Context(), studyID)
	if err != nil {
		if errors.Is(err, studiesdomain.ErrStudyNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("studies.feedback_list: list failed", err, "study_id", studyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}

func (h *Handlers) ListSections(w http.ResponseWriter, r *http.Request) {
	sections := h.Catalog.Sections()

	type sectionSummary struct {
		Numero int    `json:"numero"`
		Name   string `json:"name"`
	}
	response := make([]sectionSummary, 0, len(sections))
	for _, section := range sections {
		response = append(response, sectionSummary{Numero: section.Numero, Name: section.Name})
	}

	writeJSON(w, http.StatusOK, response)
}
