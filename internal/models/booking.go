package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking status values.
const (
	BookingScheduled = "scheduled"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no-show"
)

// ValidBookingStatus reports whether s is one of the accepted booking
// status literals.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingScheduled, BookingCompleted, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

// Booking carries denormalized patient and doctor names so the admin
// list renders without extra lookups.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID   primitive.ObjectID `bson:"patientId" json:"patientId"`
	PatientName string             `bson:"patientName" json:"patientName"`
	DoctorID    primitive.ObjectID `bson:"doctorId" json:"doctorId"`
	DoctorName  string             `bson:"doctorName" json:"doctorName"`
	Specialty   string             `bson:"specialty" json:"specialty"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
	Time        string             `bson:"time" json:"time"` // HH:MM, 24h
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// BookingFilter is the typed form of the admin booking list query
// parameters. Zero values mean "no filter".
type BookingFilter struct {
	Search    string
	Status    string
	StartDate string
	EndDate   string
}
