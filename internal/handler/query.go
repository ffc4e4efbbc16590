package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gramavoice/internal/repository"
	"gramavoice/internal/service"
)

type QueryHandler interface {
	AnalyzeText(c *gin.Context)
	VoiceInput(c *gin.Context)
	GetHistory(c *gin.Context)
	SetResolved(c *gin.Context)
}

type queryHandler struct {
	gateway *service.Gateway
	logger  *zap.Logger
}

func NewQueryHandler(gateway *service.Gateway, logger *zap.Logger) QueryHandler {
	return &queryHandler{gateway: gateway, logger: logger}
}

// Empty text is a valid request; classification treats it as a
// no-match and answers with the general templates.
type analyzeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	UserID   string `json:"user_id"`
}

type historyRequest struct {
	UserID string `json:"user_id"`
	Limit  int    `json:"limit"`
}

func applyDefaults(language, userID *string) {
	if *language == "" {
		*language = "hi"
	}
	if *userID == "" {
		*userID = "demo_user"
	}
}

// AnalyzeText handles POST /api/analyze
func (h *queryHandler) AnalyzeText(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	applyDefaults(&req.Language, &req.UserID)

	result, err := h.gateway.ProcessQuery(req.Text, req.Language, req.UserID)
	if err != nil {
		h.logger.Error("Failed to process query", zap.String("user_id", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process query"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"query_id":         result.QueryID,
		"detected_intent":  result.DetectedIntent,
		"service_category": result.ServiceCategory,
		"confidence":       result.Confidence,
		"ai_response":      result.AIResponse,
		"complaint_id":     result.ComplaintID,
	})
}

// VoiceInput handles POST /api/voice-input (multipart audio upload plus
// language/user_id form fields).
func (h *queryHandler) VoiceInput(c *gin.Context) {
	fileHeader, err := c.FormFile("audio_file")
	if err != nil {
		h.logger.Error("Missing audio file", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio_file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open audio upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read audio file"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read audio upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read audio file"})
		return
	}

	language := c.DefaultPostForm("language", "hi")
	userID := c.DefaultPostForm("user_id", "demo_user")

	result, err := h.gateway.ProcessVoiceInput(audio, language, userID)
	if err != nil {
		h.logger.Error("Failed to process voice input", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process voice input"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"query_id":           result.QueryID,
		"query_text":         result.QueryText,
		"detected_intent":    result.DetectedIntent,
		"service_category":   result.ServiceCategory,
		"ai_response":        result.AIResponse,
		"audio_response_url": result.AudioResponseURL,
		"confidence":         result.Confidence,
		"complaint_id":       result.ComplaintID,
	})
}

type resolvedRequest struct {
	Resolved *bool `json:"resolved" binding:"required"`
}

// SetResolved handles PATCH /api/queries/:id/resolved
func (h *queryHandler) SetResolved(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Error("Invalid query ID", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query ID"})
		return
	}

	var req resolvedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid resolved request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.gateway.SetQueryResolved(id, *req.Resolved); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Query not found"})
			return
		}
		h.logger.Error("Failed to update query", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update query"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetHistory handles POST /api/history
func (h *queryHandler) GetHistory(c *gin.Context) {
	var req historyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid history request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UserID == "" {
		req.UserID = "demo_user"
	}

	history, err := h.gateway.History(req.UserID, req.Limit)
	if err != nil {
		h.logger.Error("Failed to get history", zap.String("user_id", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "history": history})
}
