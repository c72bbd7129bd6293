package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	activityGeo "mobile-analytics-service/internal/activity/adapters/geo"
	activityHttp "mobile-analytics-service/internal/activity/adapters/http/fiber"
	activityRepoPg "mobile-analytics-service/internal/activity/adapters/postgres"
	activityUsecase "mobile-analytics-service/internal/activity/core/usecase"

	dashboardHttp "mobile-analytics-service/internal/dashboard/adapters/http/fiber"
	dashboardRepoPg "mobile-analytics-service/internal/dashboard/adapters/postgres"
	dashboardUsecase "mobile-analytics-service/internal/dashboard/core/usecase"

	"mobile-analytics-service/internal/config"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "mobile-analytics-service/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.PostgresDSN == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Repositories
	attributionRepo := activityRepoPg.NewAttributionRepository(db)
	crashRepo := activityRepoPg.NewCrashRepository(db)
	goalRepo := activityRepoPg.NewGoalRepository(db)
	statsRepo := dashboardRepoPg.NewStatsRepository(dashboardRepoPg.NewSQLDB(db))

	// Usecases
	trackUC := activityUsecase.NewTrackActivityUseCase(
		attributionRepo,
		activityUsecase.NewCrashAggregator(crashRepo),
		activityUsecase.NewGoalAggregator(goalRepo),
		activityUsecase.Settings{
			SessionGap:   cfg.SessionGap,
			SearchWindow: cfg.SearchWindow,
			LogCity:      cfg.LogCity,
		},
		nil,
	)
	dashboardUC := dashboardUsecase.NewGetDashboardUseCase(statsRepo)

	app := fiber.New()

	// ingestion endpoints
	activityHandler := activityHttp.NewActivityHandler(trackUC, activityGeo.NewNoopResolver())
	app.Post("/v1/events", activityHandler.PostEvents)
	app.Post("/v1/actions", activityHandler.PostActions)

	// dashboard endpoints
	dashboardHandler := dashboardHttp.NewDashboardHandler(dashboardUC)
	app.Get("/v1/apps/:app_id/activated", dashboardHandler.GetActivated)
	app.Get("/v1/apps/:app_id/stats", dashboardHandler.GetStats)
	app.Get("/v1/apps/:app_id/crashes", dashboardHandler.GetCrashes)
	app.Get("/v1/apps/:app_id/goals", dashboardHandler.GetGoals)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.ListenAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
