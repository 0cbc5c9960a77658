package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medibook/medibook-api/internal/models"
)

// bookingQuery translates a BookingFilter into a Mongo filter document.
// Date bounds compare lexically, which is safe for YYYY-MM-DD strings.
func bookingQuery(f models.BookingFilter) bson.M {
	q := bson.M{}
	if f.Search != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"patientName": rx},
			bson.M{"doctorName": rx},
		}
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.StartDate != "" {
		q["date"] = bson.M{"$gte": f.StartDate}
	}
	if f.EndDate != "" {
		if d, ok := q["date"].(bson.M); ok {
			d["$lte"] = f.EndDate
		} else {
			q["date"] = bson.M{"$lte": f.EndDate}
		}
	}
	return q
}

func (m *Mongo) GetBookings(ctx context.Context, filter models.BookingFilter, page, limit int64) ([]models.Booking, int64, error) {
	collection := m.db.Collection(bookingsCollection)
	query := bookingQuery(filter)

	total, err := collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, 0, err
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}
	return bookings, total, nil
}

func (m *Mongo) GetPatientBookings(ctx context.Context, patientID primitive.ObjectID) ([]models.Booking, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.db.Collection(bookingsCollection).Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}
	return bookings, nil
}

func (m *Mongo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	_, err := m.db.Collection(bookingsCollection).InsertOne(ctx, booking)
	return err
}

func (m *Mongo) UpdateBookingStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error) {
	result, err := m.db.Collection(bookingsCollection).UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
