package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gramavoice/internal/models"
)

type CatalogHandler interface {
	GetServices(c *gin.Context)
	GetLanguages(c *gin.Context)
}

type catalogHandler struct{}

func NewCatalogHandler() CatalogHandler {
	return &catalogHandler{}
}

// GetServices handles GET /api/services
func (h *catalogHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": models.ServiceCatalog})
}

// GetLanguages handles GET /api/languages
func (h *catalogHandler) GetLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": models.SupportedLanguages})
}
