package api

import (
	"net/http"

	"github.com/dom/timesheet/internal/api/handlers"
	"github.com/dom/timesheet/internal/api/middleware"
	"github.com/dom/timesheet/internal/config"
	"github.com/dom/timesheet/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, cfg *config.Config, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	timeEntryHandler := handlers.NewTimeEntryHandler(services.TimeEntry, log)
	timeSheetHandler := handlers.NewTimeSheetHandler(services.TimeSheet, log)

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.RequestTimeout(cfg.RequestTimeout))
		r.Use(middleware.UserID(cfg.DefaultUserID))

		r.Post("/batidas", timeEntryHandler.Create)

		r.Route("/folhas-de-ponto", func(r chi.Router) {
			r.Get("/{anoMes}", timeSheetHandler.Get)
			r.Get("/{anoMes}/export", timeSheetHandler.Export)
		})
	})

	return r
}
