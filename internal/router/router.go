package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GregMSThompson/bonuses-backend/internal/handlers"
	"github.com/GregMSThompson/bonuses-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(lm.LoggerMiddleware)

	bh := handlers.NewBonusHandlers(deps)

	r.Mount("/bonuses", bh.BonusRoutes())
	r.Handle("/metrics", promhttp.Handler())
	return r
}
