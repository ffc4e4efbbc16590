package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gramavoice/internal/models"
	"gramavoice/internal/repository"
)

type ComplaintHandler interface {
	GetComplaints(c *gin.Context)
	GetComplaintByID(c *gin.Context)
	UpdateComplaintStatus(c *gin.Context)
}

type complaintHandler struct {
	complaintRepo repository.ComplaintRepository
	logger        *zap.Logger
}

func NewComplaintHandler(complaintRepo repository.ComplaintRepository, logger *zap.Logger) ComplaintHandler {
	return &complaintHandler{complaintRepo: complaintRepo, logger: logger}
}

// GetComplaints handles GET /api/complaints
// Query parameters:
// - status: filter by lifecycle status (optional)
// - category: filter by service category (optional)
func (h *complaintHandler) GetComplaints(c *gin.Context) {
	status := c.Query("status")
	category := c.Query("category")

	if status != "" && !models.ValidComplaintStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	complaints, err := h.complaintRepo.GetComplaints(status, category)
	if err != nil {
		h.logger.Error("Failed to get complaints", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve complaints"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// GetComplaintByID handles GET /api/complaints/:complaint_id
func (h *complaintHandler) GetComplaintByID(c *gin.Context) {
	complaintID := c.Param("complaint_id")

	complaint, err := h.complaintRepo.GetByComplaintID(complaintID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		h.logger.Error("Failed to get complaint", zap.String("complaint_id", complaintID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve complaint"})
		return
	}

	c.JSON(http.StatusOK, complaint)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateComplaintStatus handles PATCH /api/complaints/:complaint_id/status
func (h *complaintHandler) UpdateComplaintStatus(c *gin.Context) {
	complaintID := c.Param("complaint_id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid status update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !models.ValidComplaintStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if err := h.complaintRepo.UpdateStatus(complaintID, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		h.logger.Error("Failed to update complaint status",
			zap.String("complaint_id", complaintID),
			zap.String("status", req.Status),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update complaint"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "complaint_id": complaintID, "status": req.Status})
}
