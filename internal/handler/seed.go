package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gramavoice/internal/repository"
)

type SeedHandler interface {
	SeedDemoData(c *gin.Context)
}

type seedHandler struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSeedHandler(db *sqlx.DB, logger *zap.Logger) SeedHandler {
	return &seedHandler{db: db, logger: logger}
}

// SeedDemoData handles POST /api/seed-demo
func (h *seedHandler) SeedDemoData(c *gin.Context) {
	if err := repository.SeedDemoData(h.db, h.logger); err != nil {
		h.logger.Error("Failed to seed demo data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed demo data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Demo data seeded successfully"})
}
