package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc   *services.AnalyticsService
	State *services.DashboardState
}

func NewAnalyticsController(svc *services.AnalyticsService, state *services.DashboardState) *AnalyticsController {
	return &AnalyticsController{Svc: svc, State: state}
}

// GetDashboard refreshes and returns the full analytics dashboard for a
// range selector (?range=7d|14d|30d|90d|custom&from=...&to=...). A failed
// refresh keeps the previously committed snapshot intact.
func (h *AnalyticsController) GetDashboard(c *gin.Context) {
	uid := c.GetUint("userID")

	rng := services.ResolveRange(
		c.DefaultQuery("range", "30d"),
		c.Query("from"),
		c.Query("to"),
		time.Now(),
	)

	gen := h.State.Begin(uid)
	out, err := h.Svc.Dashboard(c.Request.Context(), uid, rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not refresh dashboard"})
		return
	}

	if !h.State.Commit(uid, gen, out) {
		// A newer refresh landed while this one was in flight; serve the
		// snapshot that won instead of overwriting it.
		if cur := h.State.Current(uid); cur != nil {
			c.JSON(http.StatusOK, cur)
			return
		}
	}
	c.JSON(http.StatusOK, out)
}

// GetLastDashboard returns the last committed snapshot without refreshing.
func (h *AnalyticsController) GetLastDashboard(c *gin.Context) {
	uid := c.GetUint("userID")

	cur := h.State.Current(uid)
	if cur == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dashboard yet"})
		return
	}
	c.JSON(http.StatusOK, cur)
}
