package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medibook/medibook-api/internal/models"
)

// ErrNotFound is returned when a lookup targets a record that does not
// exist. Handlers map it to 404; every other error is infrastructure.
var ErrNotFound = errors.New("record not found")

// DoctorStore is the data-access boundary for doctor records.
type DoctorStore interface {
	GetDoctors(ctx context.Context, filter models.DoctorFilter, page, limit int64) ([]models.Doctor, int64, error)
	GetDoctorByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) error
	UpdateDoctor(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Doctor, error)
	ToggleDoctorApproval(ctx context.Context, id primitive.ObjectID, approved bool) (*models.Doctor, error)
	UpdateCredentialStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Doctor, error)
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
}

// BookingStore is the data-access boundary for bookings.
type BookingStore interface {
	GetBookings(ctx context.Context, filter models.BookingFilter, page, limit int64) ([]models.Booking, int64, error)
	GetPatientBookings(ctx context.Context, patientID primitive.ObjectID) ([]models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	UpdateBookingStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error)
}

// UserStore is the data-access boundary for accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}
