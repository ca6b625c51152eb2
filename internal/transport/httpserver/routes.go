package httpserver

import (
	"net/http"
	"time"

	"estudios-app-go/internal/config"
	usersdomain "estudios-app-go/internal/domain/users"
	"estudios-app-go/internal/transport/httpserver/handler"
	authmw "estudios-app-go/internal/transport/httpserver/middleware"
	"estudios-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		auth := authmw.NewTokenAuth(handlers.Users, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/catalog/sections", handlers.ListSections)
			r.Get("/periods", handlers.ListPeriods)

			r.Get("/families", handlers.ListFamilies)
			r.Post("/families", handlers.CreateFamily)
			r.Get("/families/{family_id}", handlers.GetFamily)
			r.Get("/families/{family_id}/members", handlers.ListFamilyMembers)
			r.Post("/families/{family_id}/members", handlers.AddFamilyMember)
			r.Get("/families/{family_id}/comments", handlers.ListFamilyComments)
			r.Post("/families/{family_id}/comments", handlers.AddFamilyComment)

			r.Get("/families/{family_id}/transactions", handlers.ListTransactions)
			r.Post("/families/{family_id}/transactions", handlers.CreateTransaction)
			r.Put("/families/{family_id}/transactions/{transaction_id}", handlers.UpdateTransaction)
			r.Post("/families/{family_id}/transactions/{transaction_id}/deactivate", handlers.DeactivateTransaction)
			r.Get("/families/{family_id}/totals", handlers.FamilyTotals)

			r.Get("/studies", handlers.ListStudies)
			r.Post("/studies", handlers.CreateStudy)
			r.Get("/studies/{study_id}", handlers.GetStudy)
			r.Post("/studies/{study_id}/submit", handlers.SubmitStudy)
			r.Post("/studies/{study_id}/feedback", handlers.SubmitFeedback)
			r.Get("/studies/{study_id}/feedback", handlers.ListFeedback)
			r.Delete("/studies/{study_id}", handlers.DeleteStudy)
			r.Post("/studies/{study_id}/recover", handlers.RecoverStudy)

			r.Get("/studies/{study_id}/sections/{numero}", handlers.LoadSection)
			r.Post("/studies/{study_id}/sections/{numero}", handlers.SubmitSection)
			r.Post("/studies/{study_id}/answers", handlers.AddAnswer)
			r.Delete("/answers/{answer_id}", handlers.RemoveAnswer)

			r.Get("/studies/{study_id}/scholarship", handlers.GetScholarship)
			r.Get("/studies/{study_id}/scholarship/letter", handlers.ScholarshipLetter)

			r.Group(func(r chi.Router) {
				r.Use(authmw.RequireRoles(usersdomain.RoleAdmin, usersdomain.RoleDirector))

				r.Post("/studies/{study_id}/approve", handlers.ApproveStudy)
			})

			r.Group(func(r chi.Router) {
				r.Use(authmw.RequireRoles(usersdomain.RoleAdmin, usersdomain.RoleServiciosEscolares))

				r.Post("/studies/{study_id}/scholarship", handlers.AssignScholarship)
			})

			r.Group(func(r chi.Router) {
				r.Use(authmw.RequireRoles(usersdomain.RoleAdmin))

				r.Post("/periods", handlers.CreatePeriod)
				r.Get("/users", handlers.ListUsers)
				r.Post("/users", handlers.ProvisionUser)
				r.Get("/users/{user_id}/token", handlers.GetUserToken)
			})
		})
	})

	return r
}
