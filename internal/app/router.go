package app

import (
	"context"
	"lockin_backend/internal/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Router собирает цепочку перехватчиков и маршруты.
// Порядок: request id, access log, recoverer, CORS, затем auth только для защищённой группы
func (sp *ServiceProvider) Router(ctx context.Context, logger zerolog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   sp.HTTPCfg().AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           60 * 15,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	authHandler := sp.AuthHandler(ctx)
	casinoHandler := sp.CasinoHandler(ctx)
	studyHandler := sp.StudyHandler(ctx)
	dashboardHandler := sp.DashboardHandler(ctx)
	progressHandler := sp.ProgressHandler(ctx)
	accountHandler := sp.AccountHandler(ctx)

	r.Route("/api", func(api chi.Router) {
		// Auth endpoints
		api.Post("/register", authHandler.Register)
		api.Post("/login", authHandler.Login)
		api.Post("/refresh", authHandler.Refresh)
		api.Post("/logout", authHandler.Logout)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			// Casino endpoints
			protected.Post("/casino/spin", casinoHandler.Spin)
			protected.Get("/casino/stats", casinoHandler.Stats)

			// Study endpoints
			protected.Post("/study/session", studyHandler.RecordSession)
			protected.Post("/study/session/{id}/close", studyHandler.CloseSession)

			// Stats endpoints
			protected.Get("/dashboard/stats", dashboardHandler.Stats)
			protected.Get("/dashboard/leaderboard", dashboardHandler.Leaderboard)
			protected.Get("/progress/stats", progressHandler.Stats)

			// Account endpoints
			protected.Post("/reset_progress", accountHandler.ResetProgress)
			protected.Delete("/delete_account", accountHandler.DeleteAccount)
		})
	})

	return r
}
