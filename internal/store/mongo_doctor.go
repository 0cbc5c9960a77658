package store

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medibook/medibook-api/internal/models"
)

// doctorQuery translates a DoctorFilter into a Mongo filter document.
func doctorQuery(f models.DoctorFilter) bson.M {
	q := bson.M{}
	if f.Search != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"fullName": rx},
			bson.M{"email": rx},
			bson.M{"bio": rx},
		}
	}
	if f.SpecialtyID != "" {
		q["specialtyId"] = f.SpecialtyID
	}
	if f.CredentialStatus != "" {
		q["credentialStatus"] = f.CredentialStatus
	}
	if f.ApprovalStatus != nil {
		q["approved"] = *f.ApprovalStatus
	}
	return q
}

func (m *Mongo) GetDoctors(ctx context.Context, filter models.DoctorFilter, page, limit int64) ([]models.Doctor, int64, error) {
	collection := m.db.Collection(doctorsCollection)
	query := doctorQuery(filter)

	total, err := collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "fullName", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err = cursor.All(ctx, &doctors); err != nil {
		return nil, 0, err
	}
	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}
	return doctors, total, nil
}

func (m *Mongo) GetDoctorByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := m.db.Collection(doctorsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (m *Mongo) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	_, err := m.db.Collection(doctorsCollection).InsertOne(ctx, doctor)
	return err
}

func (m *Mongo) UpdateDoctor(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Doctor, error) {
	update := bson.M{}
	for k, v := range fields {
		update[k] = v
	}
	return m.findAndSetDoctor(ctx, id, update)
}

func (m *Mongo) ToggleDoctorApproval(ctx context.Context, id primitive.ObjectID, approved bool) (*models.Doctor, error) {
	return m.findAndSetDoctor(ctx, id, bson.M{"approved": approved})
}

func (m *Mongo) UpdateCredentialStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Doctor, error) {
	return m.findAndSetDoctor(ctx, id, bson.M{"credentialStatus": status})
}

// findAndSetDoctor applies a $set and returns the post-update record.
func (m *Mongo) findAndSetDoctor(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Doctor, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doctor models.Doctor
	err := m.db.Collection(doctorsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (m *Mongo) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := m.db.Collection(specialtiesCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	if err = cursor.All(ctx, &specialties); err != nil {
		return nil, err
	}
	if specialties == nil {
		specialties = make([]models.Specialty, 0)
	}
	return specialties, nil
}
