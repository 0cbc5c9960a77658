package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/medibook/medibook-api/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// parsePagination extracts page and limit from raw query parameters.
// Both default when absent; non-numeric or sub-1 values are rejected
// rather than propagated into pagination arithmetic.
func parsePagination(q url.Values) (page, limit int64, err error) {
	page, err = positiveParam(q, "page", defaultPage)
	if err != nil {
		return 0, 0, err
	}
	limit, err = positiveParam(q, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func positiveParam(q url.Values, key string, def int64) (int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return v, nil
}

// parseDoctorFilter normalizes raw doctor list query parameters.
//
// approvalStatus is deliberately asymmetric: an absent parameter means
// no filter, while a present parameter with any value other than the
// literal "true" (including empty and "false") filters for false.
// Callers must know this convention.
func parseDoctorFilter(q url.Values) models.DoctorFilter {
	f := models.DoctorFilter{}
	if search := q.Get("search"); search != "" {
		f.Search = search
	}
	if specialtyID := q.Get("specialtyId"); specialtyID != "" {
		f.SpecialtyID = specialtyID
	}
	// Invalid credential statuses are dropped silently, not rejected.
	if status := q.Get("credentialStatus"); models.ValidCredentialStatus(status) {
		f.CredentialStatus = status
	}
	if _, ok := q["approvalStatus"]; ok {
		approved := q.Get("approvalStatus") == "true"
		f.ApprovalStatus = &approved
	}
	return f
}

// parseBookingFilter normalizes raw booking list query parameters.
// Invalid statuses and malformed dates are dropped silently, matching
// the doctor filter's convention.
func parseBookingFilter(q url.Values) models.BookingFilter {
	f := models.BookingFilter{}
	if search := q.Get("search"); search != "" {
		f.Search = search
	}
	if status := q.Get("status"); models.ValidBookingStatus(status) {
		f.Status = status
	}
	if startDate := q.Get("startDate"); startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err == nil {
			f.StartDate = startDate
		}
	}
	if endDate := q.Get("endDate"); endDate != "" {
		if _, err := time.Parse("2006-01-02", endDate); err == nil {
			f.EndDate = endDate
		}
	}
	return f
}
