package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/streameme/streameme/internal/repository"
)

// HistoryHandler serves the upload-attempt audit log.
type HistoryHandler struct {
	records *repository.UploadRecordRepository
}

// NewHistoryHandler creates a history handler.
func NewHistoryHandler(records *repository.UploadRecordRepository) *HistoryHandler {
	return &HistoryHandler{records: records}
}

// List handles GET /api/v1/history.
func (h *HistoryHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	recs, err := h.records.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list upload history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs})
}
