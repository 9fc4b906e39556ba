package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/config"     // Internal config loader
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/database"   // MySQL connection pool
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/handler"    // HTTP handlers
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/middleware" // Redis cache + rate limiting
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/queue"      // Assignment event consumer
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/repository" // Data access layer
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/router"     // Route registration
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/storage"    // S3 uploads for logos/avatars
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when REDIS_ADDR is unset

	// Repositories.
	locationRepo := repository.NewLocationRepo(db)
	bedroomRepo := repository.NewBedroomRepo(db)
	bedRepo := repository.NewBedRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	teamRepo := repository.NewTeamRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	assignmentRepo := repository.NewAssignmentRepo(db)
	draftRepo := repository.NewDraftRepo(rdb)

	uploader := storage.NewUploader(&cfg) // nil when no bucket is configured

	// Handlers.
	gridHandler := handler.NewGridHandler(catalogRepo, assignmentRepo, profileRepo, teamRepo)
	intentHandler := handler.NewIntentHandler(draftRepo, bedRepo, bedroomRepo, profileRepo)
	assignmentHandler := handler.NewAssignmentHandler(assignmentRepo, bedRepo, bedroomRepo, draftRepo)
	adminHandler := handler.NewAdminHandler(locationRepo, bedroomRepo, bedRepo, catalogRepo)
	teamHandler := handler.NewTeamHandler(teamRepo, uploader)
	profileHandler := handler.NewProfileHandler(profileRepo, teamRepo, invoiceRepo, uploader)
	webhookHandler := handler.NewWebhookHandler(invoiceRepo, profileRepo, cfg.WebhookSecret)

	e := echo.New() // Create Echo instance

	// Rate limiting sits in front of every route; the response cache
	// is applied per group behind auth.  Both no-op when Redis is
	// absent or disabled.
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheCfg := config.LoadCacheConfig()
	catalogCache := middleware.NewRedisCache(cacheCfg, rdb)
	catalogInvalidate := middleware.NewCacheInvalidator(cacheCfg, rdb)

	router.RegisterRoutes(e)
	router.RegisterWebhooks(e, webhookHandler)
	router.RegisterGrid(e, gridHandler, intentHandler, assignmentHandler, cfg.JWTSecret)
	router.RegisterCatalog(e, adminHandler, cfg.JWTSecret, catalogCache, catalogInvalidate)
	router.RegisterPeople(e, teamHandler, profileHandler, cfg.JWTSecret)

	// Assignment event consumer keeps its own connection and retry
	// loop; a broker outage never blocks the API.
	go func() {
		if err := queue.StartAssignmentConsumer(); err != nil {
			log.Printf("queue consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
