package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gramavoice/internal/handler"
	"gramavoice/internal/middleware"
	"gramavoice/internal/repository"
	"gramavoice/internal/service"
)

const appVersion = "1.0.0"

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	logger *zap.Logger
}

func NewServer(db *sqlx.DB, gateway *service.Gateway, logger *zap.Logger) *Server {
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	s := &Server{
		router: router,
		db:     db,
		logger: logger,
	}

	s.setupRoutes(gateway)

	return s
}

func (s *Server) setupRoutes(gateway *service.Gateway) {
	complaintRepo := repository.NewComplaintRepository(s.db, s.logger)

	queryHandler := handler.NewQueryHandler(gateway, s.logger)
	analyticsHandler := handler.NewAnalyticsHandler(gateway, s.logger)
	complaintHandler := handler.NewComplaintHandler(complaintRepo, s.logger)
	catalogHandler := handler.NewCatalogHandler()
	seedHandler := handler.NewSeedHandler(s.db, s.logger)

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to GramaVoice",
			"version": appVersion,
			"status":  "operational",
		})
	})

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	{
		api.GET("/services", catalogHandler.GetServices)
		api.GET("/languages", catalogHandler.GetLanguages)

		api.POST("/analyze", queryHandler.AnalyzeText)
		api.POST("/voice-input", queryHandler.VoiceInput)
		api.POST("/history", queryHandler.GetHistory)
		api.POST("/dashboard-data", analyticsHandler.GetDashboard)
		api.POST("/seed-demo", seedHandler.SeedDemoData)

		api.GET("/complaints", complaintHandler.GetComplaints)
		api.GET("/complaints/:complaint_id", complaintHandler.GetComplaintByID)
		api.PATCH("/complaints/:complaint_id/status", complaintHandler.UpdateComplaintStatus)
		api.PATCH("/queries/:id/resolved", queryHandler.SetResolved)
	}
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
