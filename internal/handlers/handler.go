package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medibook/medibook-api/internal/services"
	"github.com/medibook/medibook-api/internal/store"
)

// Handler holds the collaborators every request handler needs.
type Handler struct {
	Doctors  store.DoctorStore
	Bookings store.BookingStore
	Users    store.UserStore
	Metrics  *services.MetricsService
	Log      *zap.Logger
}

func NewHandler(doctors store.DoctorStore, bookings store.BookingStore, users store.UserStore, metrics *services.MetricsService, log *zap.Logger) *Handler {
	return &Handler{
		Doctors:  doctors,
		Bookings: bookings,
		Users:    users,
		Metrics:  metrics,
		Log:      log,
	}
}

// paginationEnvelope builds the pagination block of list responses.
// totalPages is ceil(total/limit).
func paginationEnvelope(page, limit, total int64) gin.H {
	return gin.H{
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": (total + limit - 1) / limit,
	}
}

// timingEnvelope builds the operation-timing metadata block.
func timingEnvelope(start time.Time) gin.H {
	return gin.H{
		"loadTime": fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
	}
}
