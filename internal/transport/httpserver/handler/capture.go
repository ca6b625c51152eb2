package handler

import (
	"errors"
	"net/http"

	"estudios-app-go/internal/catalog"
	studiesdomain "estudios-app-go/internal/domain/studies"
	"github.com/go-chi/chi/v5"
)

type submitSectionRequest struct {
	Answers []answerEditPayload `json:"answers"`
}

type answerEditPayload struct {
	AnswerID string  `json:"answer_id"`
	Text     string  `json:"text"`
	OptionID *string `json:"option_id"`
}

type addAnswerRequest struct {
	QuestionID string `json:"question_id"`
}

func (h *Handlers) LoadSection(w http.ResponseWriter, r *http.Request) {
	studyID := chi.URLParam(r, "study_id")
	numero, err := parseIntPath(chi.URLParam(r, "numero"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid section number")
		return
	}

	view, err := h.Studies.LoadSection(r.Context(), studyID, numero)
	if err != nil {
		switch {
		case errors.Is(err, studiesdomain.ErrStudyNotFound),
			errors.Is(err, catalog.ErrSectionNotFound):
			writeNotFound(w)
		default:
			h.log.InternalError("capture.load: load section failed", err, "study_id", studyID, "numero", numero)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) SubmitSection(w http.ResponseWriter, r *http.Request) {
	studyID := chi.URLParam(r, "study_id")
	numero, err := parseIntPath(chi.URLParam(r, "numero"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid section number")
		return
	}

	var req submitSectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	edits := make([]studiesdomain.AnswerEdit, 0, len(req.Answers))
	for _, payload := range req.Answers {
		edits = append(edits, studiesdomain.AnswerEdit{
			AnswerID: payload.AnswerID,
			Text:     payload.Text,
			OptionID: payload.OptionID,
		})
	}

	result, err := h.Studies.SubmitSection(r.Context(), studyID, numero, edits)
	if err != nil {
		switch {
		case errors.Is(err, studiesdomain.ErrStudyNotFound),
			errors.Is(err, catalog.ErrSectionNotFound):
			writeNotFound(w)
		case errors.Is(err, studiesdomain.ErrStudyNotEditable):
			writeError(w, http.StatusConflict, "not_editable", "study status does not allow capture")
		default:
			h.log.InternalError("capture.submit: submit section failed", err, "study_id", studyID, "numero", numero)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) AddAnswer(w http.ResponseWriter, r *http.Request) {
	studyID := chi.URLParam(r, "study_id")

	var req addAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	answer, err := h.Studies.AddAnswer(r.Context(), studyID, req.QuestionID)
	if err != nil {
		switch {
		case errors.Is(err, studiesdomain.ErrStudyNotFound),
			errors.Is(err, catalog.ErrQuestionNotFound):
			writeNotFound(w)
		case errors.Is(err, studiesdomain.ErrStudyNotEditable):
			writeError(w, http.StatusConflict, "not_editable", "study status does not allow capture")
		default:
			h.log.InternalError("capture.add_answer: add failed", err, "study_id", studyID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, answer)
}

func (h *Handlers) RemoveAnswer(w http.ResponseWriter, r *http.Request) {
	answerID := chi.URLParam(r, "answer_id")

	if err := h.Studies.RemoveAnswer(r.Context(), answerID); err != nil {
		if errors.Is(err, studiesdomain.ErrAnswerNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("capture.remove_answer: remove failed", err, "answer_id", answerID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
