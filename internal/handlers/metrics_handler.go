package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const defaultMetricsDays = 7

// GetMetrics returns per-day booking counts and slot utilization for
// the admin dashboard.
func (h *Handler) GetMetrics(c *gin.Context) {
	days, err := positiveParam(c.Request.URL.Query(), "days", defaultMetricsDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	byDay := h.Metrics.BookingsByDay(int(days))
	c.JSON(http.StatusOK, gin.H{
		"bookingsByDay": byDay,
		"utilization":   h.Metrics.Utilization(byDay),
	})
}
