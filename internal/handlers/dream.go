package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/horizonhq/horizon-api/internal/dto"
	apierrors "github.com/horizonhq/horizon-api/internal/errors"
	"github.com/horizonhq/horizon-api/internal/middleware"
	"github.com/horizonhq/horizon-api/internal/models"
	"github.com/horizonhq/horizon-api/internal/services"
)

// DreamHandler coordinates dream-related HTTP handlers.
type DreamHandler struct {
	dreamService *services.DreamService
	goalService  *services.GoalService
	mentor       *services.MentorService
}

// NewDreamHandler creates a new DreamHandler. The mentor may be nil when
// no AI key is configured; suggestion endpoints then return 503.
func NewDreamHandler(dreamService *services.DreamService, goalService *services.GoalService, mentor *services.MentorService) *DreamHandler {
	return &DreamHandler{
		dreamService: dreamService,
		goalService:  goalService,
		mentor:       mentor,
	}
}

// ListDreams returns every dream of the current user with derived
// progress, archived dreams included.
func (h *DreamHandler) ListDreams(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	dreams, err := h.dreamService.List(c.Request.Context(), userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list dreams")
		return
	}
	goals, err := h.goalService.List(c.Request.Context(), userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dreams": dto.ToDreamDTOs(dreams, goals),
	})
}

// CreateDream creates a new dream for the current user.
func (h *DreamHandler) CreateDream(c *gin.Context) {
	type CreateDreamRequest struct {
		Title       string               `json:"title" binding:"required"`
		Description string               `json:"description"`
		Category    models.DreamCategory `json:"category" binding:"required"`
		Horizon     models.TimeHorizon   `json:"horizon" binding:"required"`
	}

	var req CreateDreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)
	dream, err := h.dreamService.Create(c.Request.Context(), userID, services.CreateDreamInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Horizon:     req.Horizon,
	})
	if err != nil {
		respondDreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDreamDTO(*dream, nil))
}

// UpdateDream partially edits a dream. Absent fields are untouched.
func (h *DreamHandler) UpdateDream(c *gin.Context) {
	type UpdateDreamRequest struct {
		Title       *string               `json:"title"`
		Description *string               `json:"description"`
		Category    *models.DreamCategory `json:"category"`
		Horizon     *models.TimeHorizon   `json:"horizon"`
	}

	var req UpdateDreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)
	dream, err := h.dreamService.Update(c.Request.Context(), userID, c.Param("id"), services.UpdateDreamInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Horizon:     req.Horizon,
	})
	if err != nil {
		respondDreamError(c, err)
		return
	}

	goals, err := h.goalService.List(c.Request.Context(), userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, dto.ToDreamDTO(*dream, goals))
}

// ArchiveDream hides a dream from active views. Its goals and history
// are retained.
func (h *DreamHandler) ArchiveDream(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	dream, err := h.dreamService.Archive(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondDreamError(c, err)
		return
	}

	goals, err := h.goalService.List(c.Request.Context(), userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, dto.ToDreamDTO(*dream, goals))
}

// ListDreamGoals returns the goals under one dream plus the dream's
// derived progress. The dream is resolved by RequireDreamAccess.
func (h *DreamHandler) ListDreamGoals(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	dream := c.MustGet(middleware.ContextKeyDream).(models.Dream)

	goals, progress, err := h.goalService.ListForDream(c.Request.Context(), userID, dream.ID)
	if err != nil {
		respondDreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goals":    goals,
		"progress": progress,
	})
}

// CreateDreamGoal adds a goal under a dream the user owns.
func (h *DreamHandler) CreateDreamGoal(c *gin.Context) {
	type CreateGoalRequest struct {
		Title    string `json:"title" binding:"required"`
		Deadline *int64 `json:"deadline"`
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)
	dream := c.MustGet(middleware.ContextKeyDream).(models.Dream)

	goal, err := h.goalService.Create(c.Request.Context(), userID, services.CreateGoalInput{
		DreamID:  dream.ID,
		Title:    req.Title,
		Deadline: req.Deadline,
	})
	if err != nil {
		respondDreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// SuggestGoals asks the AI mentor for measurable goals toward a dream.
func (h *DreamHandler) SuggestGoals(c *gin.Context) {
	if h.mentor == nil {
		apierrors.ServiceUnavailable(c, "AI suggestions are not configured")
		return
	}

	dream := c.MustGet(middleware.ContextKeyDream).(models.Dream)

	suggestions, err := h.mentor.SuggestGoals(c.Request.Context(), dream)
	if err != nil {
		apierrors.InternalError(c, "Failed to generate suggestions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
	})
}

func respondDreamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDreamNotFound):
		apierrors.NotFound(c, "Dream not found")
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidHorizon):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
