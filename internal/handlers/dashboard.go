package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/horizonhq/horizon-api/internal/constants"
	"github.com/horizonhq/horizon-api/internal/dto"
	"github.com/horizonhq/horizon-api/internal/middleware"
	"github.com/horizonhq/horizon-api/internal/session"
	"github.com/horizonhq/horizon-api/internal/stats"
)

// DashboardHandler serves the aggregated dashboard and session views.
type DashboardHandler struct {
	snapshots *session.Manager
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(snapshots *session.Manager) *DashboardHandler {
	return &DashboardHandler{snapshots: snapshots}
}

// GetDashboard aggregates the user's snapshot into the dashboard
// summary. The snapshot is patched on every confirmed write, so no
// re-fetch is needed here; users without a cached snapshot get one
// loaded first.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snap := h.snapshot(c)

	active := make([]dto.DreamDTO, 0, constants.DreamHealthLimit)
	for _, d := range stats.RecentDreams(snap.Dreams, constants.DreamHealthLimit) {
		active = append(active, dto.ToDreamDTO(d, snap.Goals))
	}

	c.JSON(http.StatusOK, dto.DashboardDTO{
		Stats:       stats.Summarize(snap.Dreams, snap.Goals),
		RecentLogs:  stats.RecentLogs(snap.Logs, constants.RecentLogsLimit),
		DreamHealth: active,
	})
}

// GetSnapshot reloads the user's collections from the gateway and
// returns the full session snapshot.
func (h *DashboardHandler) GetSnapshot(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	snap := h.snapshots.Load(c.Request.Context(), userID)
	c.JSON(http.StatusOK, snap)
}

func (h *DashboardHandler) snapshot(c *gin.Context) session.Snapshot {
	userID, _ := middleware.GetUserID(c)
	if snap, ok := h.snapshots.Get(userID); ok {
		return snap
	}
	return h.snapshots.Load(c.Request.Context(), userID)
}
