package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/medibook/medibook-api/internal/models"
	"github.com/medibook/medibook-api/internal/store"
)

// ListBookings returns a filtered, paginated booking list for the
// admin dashboard.
func (h *Handler) ListBookings(c *gin.Context) {
	start := time.Now()

	page, limit, err := parsePagination(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filter := parseBookingFilter(c.Request.URL.Query())

	bookings, total, err := h.Bookings.GetBookings(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.Log.Error("list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":   bookings,
		"pagination": paginationEnvelope(page, limit, total),
		"metadata":   timingEnvelope(start),
	})
}

// BulkUpdateBookingStatus sets the status of every booking in the ids
// list. Partial matches are not an error; the response carries the
// updated count.
func (h *Handler) BulkUpdateBookingStatus(c *gin.Context) {
	start := time.Now()

	var req struct {
		IDs    []string `json:"ids"`
		Status string   `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !models.ValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of scheduled, completed, cancelled or no-show"})
		return
	}
	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No booking ids provided"})
		return
	}

	ids := make([]primitive.ObjectID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid booking ID %q", raw)})
			return
		}
		ids = append(ids, id)
	}

	updated, err := h.Bookings.UpdateBookingStatus(c.Request.Context(), ids, req.Status)
	if err != nil {
		h.Log.Error("bulk update bookings", zap.Error(err), zap.Int("requested", len(ids)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"updated":  updated,
		"message":  fmt.Sprintf("%d bookings marked %s", updated, req.Status),
		"metadata": timingEnvelope(start),
	})
}

// CreateBooking books a slot with an approved doctor for the
// authenticated patient. Unapproved doctors are reported as not found,
// matching their visibility in patient-facing search.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req struct {
		DoctorID string `json:"doctorId" binding:"required"`
		Date     string `json:"date" binding:"required"`
		Time     string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time must be in HH:MM format"})
		return
	}

	doctorID, err := primitive.ObjectIDFromHex(req.DoctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	userIDHex, _ := c.Get("userID")
	patientID, err := primitive.ObjectIDFromHex(userIDHex.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID in token"})
		return
	}

	doctor, err := h.Doctors.GetDoctorByID(c.Request.Context(), doctorID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	if err != nil {
		h.Log.Error("create booking: fetch doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !doctor.Approved {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	patient, err := h.Users.GetUserByID(c.Request.Context(), patientID)
	if err != nil {
		h.Log.Error("create booking: fetch patient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not find user details"})
		return
	}

	booking := models.Booking{
		ID:          primitive.NewObjectID(),
		PatientID:   patientID,
		PatientName: patient.FullName,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.FullName,
		Specialty:   doctor.SpecialtyID,
		Date:        req.Date,
		Time:        req.Time,
		Status:      models.BookingScheduled,
		CreatedAt:   time.Now(),
	}

	if err := h.Bookings.CreateBooking(c.Request.Context(), &booking); err != nil {
		h.Log.Error("create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": booking,
		"message": "Booking created successfully",
	})
}

// MyBookings returns the authenticated patient's bookings, newest
// first.
func (h *Handler) MyBookings(c *gin.Context) {
	userIDHex, _ := c.Get("userID")
	patientID, err := primitive.ObjectIDFromHex(userIDHex.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID in token"})
		return
	}

	bookings, err := h.Bookings.GetPatientBookings(c.Request.Context(), patientID)
	if err != nil {
		h.Log.Error("list patient bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
