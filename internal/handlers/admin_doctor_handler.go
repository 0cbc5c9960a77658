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

// ListDoctors returns a filtered, paginated doctor list for the admin
// dashboard.
func (h *Handler) ListDoctors(c *gin.Context) {
	start := time.Now()

	page, limit, err := parsePagination(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filter := parseDoctorFilter(c.Request.URL.Query())

	doctors, total, err := h.Doctors.GetDoctors(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.Log.Error("list doctors", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctors":    doctors,
		"pagination": paginationEnvelope(page, limit, total),
		"metadata":   timingEnvelope(start),
	})
}

// GetDoctor returns a single doctor by id.
func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	doctor, err := h.Doctors.GetDoctorByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	if err != nil {
		h.Log.Error("get doctor", zap.Error(err), zap.String("doctorId", id.Hex()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// UpdateDoctor applies an arbitrary-shaped partial update and returns
// the updated record. There is no optimistic-concurrency check; the
// last write wins.
func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	delete(fields, "id")
	delete(fields, "_id")
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	doctor, err := h.Doctors.UpdateDoctor(c.Request.Context(), id, fields)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	if err != nil {
		h.Log.Error("update doctor", zap.Error(err), zap.String("doctorId", id.Hex()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctor":  doctor,
		"message": "Doctor updated successfully",
	})
}

// ToggleApproval flips the patient-facing visibility flag. The flag is
// independent of credential status; no transition guard applies.
func (h *Handler) ToggleApproval(c *gin.Context) {
	start := time.Now()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	var req struct {
		Approved *bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Approved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved must be a boolean"})
		return
	}

	doctor, err := h.Doctors.ToggleDoctorApproval(c.Request.Context(), id, *req.Approved)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	if err != nil {
		h.Log.Error("toggle approval", zap.Error(err), zap.String("doctorId", id.Hex()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "Doctor approved"
	if !*req.Approved {
		message = "Doctor approval revoked"
	}
	c.JSON(http.StatusOK, gin.H{
		"doctor":   doctor,
		"message":  message,
		"metadata": timingEnvelope(start),
	})
}

// UpdateCredentials sets the credential verification status. Any valid
// status may replace any other; there is no re-review guard.
func (h *Handler) UpdateCredentials(c *gin.Context) {
	start := time.Now()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidCredentialStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of pending, verified or rejected"})
		return
	}

	doctor, err := h.Doctors.UpdateCredentialStatus(c.Request.Context(), id, req.Status)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	if err != nil {
		h.Log.Error("update credentials", zap.Error(err), zap.String("doctorId", id.Hex()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctor":   doctor,
		"message":  fmt.Sprintf("Credential status set to %s", req.Status),
		"metadata": timingEnvelope(start),
	})
}

// ListSpecialties returns the specialty reference data.
func (h *Handler) ListSpecialties(c *gin.Context) {
	start := time.Now()

	specialties, err := h.Doctors.GetSpecialties(c.Request.Context())
	if err != nil {
		h.Log.Error("list specialties", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"specialties": specialties,
		"metadata":    timingEnvelope(start),
	})
}

// SearchDoctors is the patient-facing doctor list: the approval filter
// is forced to true regardless of what the caller sent.
func (h *Handler) SearchDoctors(c *gin.Context) {
	start := time.Now()

	page, limit, err := parsePagination(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filter := parseDoctorFilter(c.Request.URL.Query())
	approved := true
	filter.ApprovalStatus = &approved

	doctors, total, err := h.Doctors.GetDoctors(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.Log.Error("search doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctors":    doctors,
		"pagination": paginationEnvelope(page, limit, total),
		"metadata":   timingEnvelope(start),
	})
}
