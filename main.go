package main

import (
	"go.uber.org/zap"

	"gramavoice/internal/ai"
	"gramavoice/internal/config"
	"gramavoice/internal/notifier"
	"gramavoice/internal/repository"
	"gramavoice/internal/server"
	"gramavoice/internal/service"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Optionally seed demo rows for first-run dashboards
	if cfg.Demo.SeedOnStartup {
		if err := repository.SeedDemoData(db, logger); err != nil {
			logger.Warn("Failed to seed demo data", zap.Error(err))
		}
	}

	// Initialize repositories
	queryRepo := repository.NewQueryRepository(db, logger)
	complaintRepo := repository.NewComplaintRepository(db, logger)
	userRepo := repository.NewUserRepository(db, logger)

	// Initialize complaint notifier (optional)
	n, err := notifier.NewNotifier(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize notifier, continuing without it", zap.Error(err))
		n = nil
	}

	// Initialize the AI demo services and the gateway pipeline
	aiService := ai.NewService(logger)
	gateway := service.NewGateway(aiService, queryRepo, complaintRepo, userRepo, n, logger)

	// Initialize and run the server
	srv := server.NewServer(db, gateway, logger)
	srv.Run(cfg.Server.Port)
}
