package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/vital-quest/docs"
	"github.com/blaisecz/vital-quest/internal/api/handler"
	"github.com/blaisecz/vital-quest/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler        *handler.UserHandler
	dailyLogHandler    *handler.DailyLogHandler
	scoreHandler       *handler.ScoreHandler
	progressionHandler *handler.ProgressionHandler
	battleHandler      *handler.BattleHandler
	coachHandler       *handler.CoachHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	dailyLogHandler *handler.DailyLogHandler,
	scoreHandler *handler.ScoreHandler,
	progressionHandler *handler.ProgressionHandler,
	battleHandler *handler.BattleHandler,
	coachHandler *handler.CoachHandler,
) *Router {
	return &Router{
		userHandler:        userHandler,
		dailyLogHandler:    dailyLogHandler,
		scoreHandler:       scoreHandler,
		progressionHandler: progressionHandler,
		battleHandler:      battleHandler,
		coachHandler:       coachHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimw.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)

				// Daily logs and the scores derived from them
				r.Get("/daily-logs", rt.dailyLogHandler.List)
				r.Route("/daily-logs/{date}", func(r chi.Router) {
					r.Put("/", rt.dailyLogHandler.Upsert)
					r.Get("/recovery", rt.scoreHandler.Recovery)
					r.Get("/battle-score", rt.scoreHandler.BattleScore)
				})
				r.Get("/stats/weekly", rt.scoreHandler.Weekly)

				// Progression
				r.Post("/progression/xp", rt.progressionHandler.ApplyXP)
				r.Get("/class", rt.progressionHandler.Classify)

				// Coach
				r.Get("/coach", rt.coachHandler.Advise)
				r.Post("/coach/feedback", rt.coachHandler.Feedback)
			})
		})

		// Player leaderboards
		r.Get("/leaderboard", rt.userHandler.Leaderboard)
		r.Get("/teams/{teamId}/leaderboard", rt.userHandler.TeamLeaderboard)

		// Battles
		r.Route("/battles", func(r chi.Router) {
			r.Post("/", rt.battleHandler.Create)
			r.Get("/{battleId}", rt.battleHandler.GetByID)
			r.Get("/{battleId}/leaderboard", rt.battleHandler.Leaderboard)
			r.Post("/{battleId}/recompute", rt.battleHandler.Recompute)
		})
	})

	return r
}
