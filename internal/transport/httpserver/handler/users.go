package handler

import (
	"errors"
	"net/http"

	usersdomain "estudios-app-go/internal/domain/users"
	"github.com/go-chi/chi/v5"
)

type provisionUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (h *Handlers) ProvisionUser(w http.ResponseWriter, r *http.Request) {
	var req provisionUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, err := h.Users.Provision(r.Context(), usersdomain.ProvisionInput{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, usersdomain.ErrEmailTaken):
			writeError(w, http.StatusConflict, "email_taken", "email already registered")
		case errors.Is(err, usersdomain.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid role")
		default:
			h.log.InternalError("users.provision: provision failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		h.log.InternalError("users.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handlers) GetUserToken(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	token, err := h.Users.TokenFor(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usersdomain.ErrUserNotFound), errors.Is(err, usersdomain.ErrTokenNotFound):
			writeNotFound(w)
		default:
			h.log.InternalError("users.token: lookup failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, token)
}
