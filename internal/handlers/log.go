package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/horizonhq/horizon-api/internal/errors"
	"github.com/horizonhq/horizon-api/internal/middleware"
	"github.com/horizonhq/horizon-api/internal/services"
)

// LogHandler coordinates action log HTTP handlers.
type LogHandler struct {
	logService *services.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService *services.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// ListLogs returns the user's journal, newest date first.
func (h *LogHandler) ListLogs(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	logs, err := h.logService.List(c.Request.Context(), userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs": logs,
	})
}

// CreateLog records a journal entry. Date may be back-dated; when
// omitted the entry is dated now.
func (h *LogHandler) CreateLog(c *gin.Context) {
	type CreateLogRequest struct {
		Content string `json:"content" binding:"required"`
		Date    int64  `json:"date"`
	}

	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)
	log, err := h.logService.Create(c.Request.Context(), userID, services.CreateLogInput{
		Content: req.Content,
		Date:    req.Date,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyLogContent) {
			apierrors.BadRequest(c, err.Error())
		} else {
			apierrors.InternalError(c, "Failed to create log")
		}
		return
	}

	c.JSON(http.StatusCreated, log)
}
