package main

import (
	"database/sql"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/richxcame/fleet-admin/internal/booking"
	"github.com/richxcame/fleet-admin/internal/finance"
	"github.com/richxcame/fleet-admin/internal/fleet"
	"github.com/richxcame/fleet-admin/internal/ledger"
	"github.com/richxcame/fleet-admin/internal/maintenance"
	"github.com/richxcame/fleet-admin/internal/returns"
	"github.com/richxcame/fleet-admin/pkg/common"
	"github.com/richxcame/fleet-admin/pkg/config"
	"github.com/richxcame/fleet-admin/pkg/database"
	"github.com/richxcame/fleet-admin/pkg/logger"
	"github.com/richxcame/fleet-admin/pkg/middleware"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load("fleet-admin")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Apply schema migrations
	if err := database.RunMigrations(&cfg.Database); err != nil {
		logger.Fatal("Failed to run migrations: " + err.Error())
	}

	// Connect to PostgreSQL
	pool, err := database.NewPostgresPool(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database: " + err.Error())
	}
	defer database.Close(pool)

	// The read-only financial rollups ride database/sql
	reportDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Fatal("Failed to open report database: " + err.Error())
	}
	defer reportDB.Close()

	// Wire services and handlers
	fleetHandler := fleet.NewHandler(fleet.NewService(fleet.NewRepository(pool)))
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewRepository(pool)))
	returnsHandler := returns.NewHandler(returns.NewService(returns.NewRepository(pool)))
	maintenanceHandler := maintenance.NewHandler(maintenance.NewService(maintenance.NewRepository(pool)))
	ledgerHandler := ledger.NewHandler(ledger.NewService(ledger.NewRepository(pool)))
	financeHandler := finance.NewHandler(finance.NewService(finance.NewRepository(reportDB)))

	// Set up Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(cfg.Server.ServiceName))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.CorrelationIDHeader}
	router.Use(cors.New(corsConfig))

	// Health check and metrics
	router.GET("/healthz", common.HealthCheck(cfg.Server.ServiceName, version, map[string]func() error{
		"postgres": func() error { return reportDB.Ping() },
	}))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		fleetHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		returnsHandler.RegisterRoutes(api)
		maintenanceHandler.RegisterRoutes(api)
		ledgerHandler.RegisterRoutes(api)
		financeHandler.RegisterRoutes(api)
	}

	// Start server
	addr := ":" + cfg.Server.Port
	logger.Info("Fleet admin service starting on port " + cfg.Server.Port)
	if err := router.Run(addr); err != nil {
		logger.Fatal("Failed to start server: " + err.Error())
	}
}
