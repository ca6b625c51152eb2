package handler

import (
	"errors"
	"net/http"
	"time"

	familiesdomain "estudios-app-go/internal/domain/families"
	"estudios-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type createFamilyRequest struct {
	Name        string `json:"name"`
	CivilStatus string `json:"civil_status"`
	Locality    string `json:"locality"`
}

type addMemberRequest struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
	Student   *struct {
		Grade string `json:"grade"`
	} `json:"student"`
	Tutor *struct {
		Occupation string `json:"occupation"`
	} `json:"tutor"`
}

type addCommentRequest struct {
	Text string `json:"text"`
}

type familyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CivilStatus string    `json:"civil_status"`
	Locality    string    `json:"locality"`
	CreatedAt   time.Time `json:"created_at"`
}

func toFamilyResponse(family *familiesdomain.Family) familyResponse {
	return familyResponse{
		ID:          family.ID,
		Name:        family.Name,
		CivilStatus: family.CivilStatus,
		Locality:    family.Locality,
		CreatedAt:   family.CreatedAt,
	}
}

func (h *Handlers) ListFamilies(w http.ResponseWriter, r *http.Request) {
	families, err := h.Families.ListFamilies(r.Context())
	if err != nil {
		h.log.InternalError("families.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]familyResponse, 0, len(families))
	for i := range families {
		response = append(response, toFamilyResponse(&families[i]))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateFamily(w http.ResponseWriter, r *http.Request) {
	var req createFamilyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Families.CreateFamily(r.Context(), familiesdomain.CreateFamilyInput{
		Name:        req.Name,
		CivilStatus: req.CivilStatus,
		Locality:    req.Locality,
	})
	if err != nil {
		switch {
		case errors.Is(err, familiesdomain.ErrInvalidCivilStatus),
			errors.Is(err, familiesdomain.ErrInvalidLocality):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("families.create: create failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toFamilyResponse(result))
}

func (h *Handlers) GetFamily(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	result, err := h.Families.GetFamily(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, familiesdomain.ErrFamilyNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("families.get: get failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toFamilyResponse(result))
}

func (h *Handlers) AddFamilyMember(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	var req addMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input := familiesdomain.AddMemberInput{
		FamilyID: familyID,
		FullName: req.FullName,
	}
	if req.BirthDate != "" {
		birthDate, err := parseDateRequired(req.BirthDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid birth date")
			return
		}
		input.BirthDate = birthDate
	}
	if req.Student != nil {
		input.Student = &familiesdomain.Student{Grade: req.Student.Grade}
	}
	if req.Tutor != nil {
		input.Tutor = &familiesdomain.Tutor{Occupation: req.Tutor.Occupation}
	}

	member, err := h.Families.AddMember(r.Context(), input)
	if err != nil {
		if errors.Is(err, familiesdomain.ErrFamilyNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("families.add_member: add failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (h *Handlers) ListFamilyMembers(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	members, err := h.Families.ListMembers(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, familiesdomain.ErrFamilyNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("families.list_members: list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (h *Handlers) AddFamilyComment(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	comment, err := h.Families.AddComment(r.Context(), familyID, user.ID, req.Text)
	if err != nil {
		if errors.Is(err, familiesdomain.ErrFamilyNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("families.add_comment: add failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *Handlers) ListFamilyComments(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	comments, err := h.Families.ListComments(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, familiesdomain.ErrFamilyNotFound) {
			writeNotFound(w)
			return
		}
		h.log.InternalError("families.list_comments: list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, comments)
}
