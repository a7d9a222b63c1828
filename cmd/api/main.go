package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aid-appraisal/internal/api/handlers"
	"aid-appraisal/internal/api/middleware"
	"aid-appraisal/internal/appraisal"
	"aid-appraisal/internal/config"
	"aid-appraisal/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	logLevel := flag.String("log-level", "", "Override log level (debug|info|warn|error)")
	flag.Parse()

	cfg := &config.Config{}
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config %s: %v\n", *cfgPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger, err := config.NewLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Environment overrides, for container deployments.
	port := cfg.Server.Port
	if p := os.Getenv("API_PORT"); p != "" {
		port = p
	}
	if port == "" {
		port = "8080"
	}
	env := cfg.Server.Env
	if e := os.Getenv("API_ENV"); e != "" {
		env = e
	}
	databaseURL := cfg.Database.URL
	if u := os.Getenv("DATABASE_URL"); u != "" {
		databaseURL = u
	}

	// Pick the store: Postgres when a database is configured, in-memory
	// otherwise.
	var st store.Store
	if databaseURL != "" {
		ctx := context.Background()
		pg, err := store.NewPostgres(ctx, databaseURL)
		if err != nil {
			logger.Fatal("connect to database", zap.Error(err))
		}
		defer pg.Close()
		if err := pg.Migrate(ctx); err != nil {
			logger.Fatal("migrate database", zap.Error(err))
		}
		st = pg
		logger.Info("using postgres store")
	} else {
		st = store.NewMemory()
		logger.Info("using in-memory store; appraisals will not survive restarts")
	}

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler())

	engine := appraisal.New(logger)
	appraisalHandler := handlers.NewAppraisalHandler(engine, st, logger)
	presetHandler := handlers.NewPresetHandler(logger)
	schemeHandler := handlers.NewSchemeHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/appraisals", appraisalHandler.RunAppraisal)
		api.GET("/appraisals", appraisalHandler.ListAppraisals)
		api.GET("/appraisals/:id", appraisalHandler.GetAppraisal)
		api.POST("/appraisals/sensitivity", appraisalHandler.RunSensitivity)

		api.GET("/presets", presetHandler.ListPresets)
		api.GET("/schemes", schemeHandler.ListSchemes)
		api.GET("/categories", schemeHandler.ListCategories)
	}

	addr := fmt.Sprintf(":%s", port)
	logger.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
