package store

import "go.mongodb.org/mongo-driver/mongo"

// Collection names.
const (
	doctorsCollection     = "doctors"
	specialtiesCollection = "specialties"
	bookingsCollection    = "bookings"
	usersCollection       = "users"
)

// Mongo implements DoctorStore, BookingStore and UserStore against a
// MongoDB database.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}
