package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medibook/medibook-api/internal/models"
)

func TestDoctorQueryEmpty(t *testing.T) {
	q := doctorQuery(models.DoctorFilter{})
	assert.Empty(t, q)
}

func TestDoctorQueryFields(t *testing.T) {
	approved := true
	q := doctorQuery(models.DoctorFilter{
		SpecialtyID:      "cardio",
		CredentialStatus: "verified",
		ApprovalStatus:   &approved,
	})
	assert.Equal(t, "cardio", q["specialtyId"])
	assert.Equal(t, "verified", q["credentialStatus"])
	assert.Equal(t, true, q["approved"])
	assert.NotContains(t, q, "$or")
}

func TestDoctorQueryApprovalFalseIsAFilter(t *testing.T) {
	approved := false
	q := doctorQuery(models.DoctorFilter{ApprovalStatus: &approved})
	assert.Equal(t, false, q["approved"])
}

func TestDoctorQuerySearchEscapesRegex(t *testing.T) {
	q := doctorQuery(models.DoctorFilter{Search: "a.b*"})
	or, ok := q["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)

	rx := or[0].(bson.M)["fullName"].(primitive.Regex)
	assert.Equal(t, `a\.b\*`, rx.Pattern)
	assert.Equal(t, "i", rx.Options)
}

func TestBookingQueryDateRange(t *testing.T) {
	q := bookingQuery(models.BookingFilter{StartDate: "2026-08-01", EndDate: "2026-08-31"})
	date, ok := q["date"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "2026-08-01", date["$gte"])
	assert.Equal(t, "2026-08-31", date["$lte"])
}

func TestBookingQueryEndDateOnly(t *testing.T) {
	q := bookingQuery(models.BookingFilter{EndDate: "2026-08-31"})
	date := q["date"].(bson.M)
	assert.Equal(t, "2026-08-31", date["$lte"])
	assert.NotContains(t, date, "$gte")
}

func TestBookingQueryStatusAndSearch(t *testing.T) {
	q := bookingQuery(models.BookingFilter{Search: "alice", Status: "no-show"})
	assert.Equal(t, "no-show", q["status"])
	assert.Contains(t, q, "$or")
}
