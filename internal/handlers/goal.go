package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/horizonhq/horizon-api/internal/errors"
	"github.com/horizonhq/horizon-api/internal/middleware"
	"github.com/horizonhq/horizon-api/internal/services"
)

// GoalHandler coordinates goal-related HTTP handlers.
type GoalHandler struct {
	goalService *services.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// ListGoals returns every goal of the current user across all dreams.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	goals, err := h.goalService.List(c.Request.Context(), userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goals": goals,
	})
}

// UpdateGoalProgress sets a goal's progress. The value is clamped to
// [0,100] and the status is recomputed in the same update.
func (h *GoalHandler) UpdateGoalProgress(c *gin.Context) {
	type UpdateProgressRequest struct {
		Progress *int `json:"progress" binding:"required"`
	}

	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)
	goal, err := h.goalService.UpdateProgress(c.Request.Context(), userID, c.Param("id"), *req.Progress)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			apierrors.NotFound(c, "Goal not found")
		} else {
			apierrors.InternalError(c, "Failed to update goal")
		}
		return
	}

	c.JSON(http.StatusOK, goal)
}
