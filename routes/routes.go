package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sportsworldcentral/fantasy-api/handlers"
)

// SetupRoutes регистрирует все маршруты API на переданном роутере.
func SetupRoutes(
	router *chi.Mux,
	playerHandler *handlers.PlayerHandler,
	performanceHandler *handlers.PerformanceHandler,
	leagueHandler *handlers.LeagueHandler,
	teamHandler *handlers.TeamHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/", analyticsHandler.HealthCheck)

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Route("/v0", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.ListPlayers)
			r.Get("/{playerID}", playerHandler.GetPlayerByID)
		})

		r.Get("/performances", performanceHandler.ListPerformances)

		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", leagueHandler.ListLeagues)
			r.Get("/{leagueID}", leagueHandler.GetLeagueByID)
		})

		r.Get("/teams", teamHandler.ListTeams)

		r.Get("/counts", analyticsHandler.GetCounts)
	})
}
