package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/avelhart/crewcall/internal/config"
	"github.com/avelhart/crewcall/internal/database"
	"github.com/avelhart/crewcall/internal/handler"
	"github.com/avelhart/crewcall/internal/middleware"
	"github.com/avelhart/crewcall/internal/queue"
	"github.com/avelhart/crewcall/internal/repository"
	"github.com/avelhart/crewcall/internal/router"
	"github.com/avelhart/crewcall/internal/service"
)

func main() {
	// Load .env when present; real deployments rely on the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	eventRepo := repository.NewEventRepo(db)
	crewRepo := repository.NewCrewMemberRepo(db)
	equipmentRepo := repository.NewEquipmentRepo(db)
	positionRepo := repository.NewPositionRepo(db)
	crewAsgRepo := repository.NewCrewAssignmentRepo(db)
	equipAsgRepo := repository.NewEquipmentAssignmentRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// Services
	assignments := service.NewAssignmentService(eventRepo, crewRepo, equipmentRepo, crewAsgRepo, equipAsgRepo)
	reports := service.NewReportService(reportRepo, eventRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	catalogHandler := handler.NewCatalogHandler(eventRepo, crewRepo, equipmentRepo, positionRepo)
	assignmentHandler := handler.NewAssignmentHandler(assignments, eventRepo)
	reportHandler := handler.NewReportHandler(reports)

	e := echo.New()

	// Redis backs both the token-bucket rate limiter (global) and the
	// response cache (report routes only).
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterScheduling(e, catalogHandler, assignmentHandler, cfg.JWTSecret)
	router.RegisterReports(e, reportHandler, cfg.JWTSecret, cache)

	// Broker consumer runs for the life of the process and reconnects
	// on its own.
	go func() {
		if err := queue.StartAssignmentConsumer(); err != nil {
			log.Printf("assignment consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
