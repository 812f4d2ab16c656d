package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/sportsworldcentral/fantasy-api/config"
	"github.com/sportsworldcentral/fantasy-api/db"
	_ "github.com/sportsworldcentral/fantasy-api/docs" // swagger document registration
	"github.com/sportsworldcentral/fantasy-api/handlers"
	"github.com/sportsworldcentral/fantasy-api/repositories"
	api "github.com/sportsworldcentral/fantasy-api/routes"
	"github.com/sportsworldcentral/fantasy-api/services"
)

//	@title			Sports World Central (SWC) Fantasy Football API
//	@version		0.1
//	@description	This API provides read-only access to info from the SportsWorldCentral (SWC) Fantasy Football API.
//	@description	The endpoints are grouped into the following categories:
//	@description	Analytics - health of the API and counts of leagues, teams, and players.
//	@description	Player - a list of NFL players, or an individual player by player_id.
//	@description	Scoring - NFL player performances, including SWC fantasy points.
//	@description	Membership - all the SWC fantasy football leagues and the teams in them.
func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Инициализация репозиториев
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	performanceRepo := repositories.NewPostgresPerformanceRepository(dbConn)
	leagueRepo := repositories.NewPostgresLeagueRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	analyticsRepo := repositories.NewPostgresAnalyticsRepository(dbConn)
	logger.Info("repositories initialized")

	// Инициализация сервисов
	playerService := services.NewPlayerService(playerRepo)
	performanceService := services.NewPerformanceService(performanceRepo)
	leagueService := services.NewLeagueService(leagueRepo, teamRepo)
	teamService := services.NewTeamService(teamRepo)
	analyticsService := services.NewAnalyticsService(analyticsRepo)
	logger.Info("services initialized")

	// Инициализация обработчиков HTTP
	playerHandler := handlers.NewPlayerHandler(playerService)
	performanceHandler := handlers.NewPerformanceHandler(performanceService)
	leagueHandler := handlers.NewLeagueHandler(leagueService)
	teamHandler := handlers.NewTeamHandler(teamService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		playerHandler,
		performanceHandler,
		leagueHandler,
		teamHandler,
		analyticsHandler,
	)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
