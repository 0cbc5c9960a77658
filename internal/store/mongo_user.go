package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medibook/medibook-api/internal/models"
)

func (m *Mongo) CreateUser(ctx context.Context, user *models.User) error {
	_, err := m.db.Collection(usersCollection).InsertOne(ctx, user)
	return err
}

func (m *Mongo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := m.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := m.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
