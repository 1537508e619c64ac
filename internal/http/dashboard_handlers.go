package http

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	recent, err := h.dashboard.RecentFuelLogs(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{
		"stats":          stats,
		"recentFuelLogs": recent,
	})
}
