package handler

import (
	"net/http"

	"estudios-app-go/internal/catalog"
	familiesdomain "estudios-app-go/internal/domain/families"
	financesdomain "estudios-app-go/internal/domain/finances"
	scholarshipsdomain "estudios-app-go/internal/domain/scholarships"
	studiesdomain "estudios-app-go/internal/domain/studies"
	usersdomain "estudios-app-go/internal/domain/users"
	"estudios-app-go/internal/transport/httpserver/middleware"
	"estudios-app-go/pkg/logger"
)

type Handlers struct {
	Users        *usersdomain.Service
	Families     *familiesdomain.Service
	Finances     *financesdomain.Service
	Studies      *studiesdomain.Service
	Scholarships *scholarshipsdomain.Service
	Catalog      *catalog.Catalog
	log          logger.Logger
}

func New(
	users *usersdomain.Service,
	families *familiesdomain.Service,
	finances *financesdomain.Service,
	studies *studiesdomain.Service,
	scholarships *scholarshipsdomain.Service,
	cat *catalog.Catalog,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:        users,
		Families:     families,
		Finances:     finances,
		Studies:      studies,
		Scholarships: scholarships,
		Catalog:      cat,
		log:          log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      user.Role,
	})
}
