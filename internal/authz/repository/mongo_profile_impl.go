package repository

import (
	"context"
	"errors"

	"adminguard/internal/authz/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepository reads principal profiles. Profiles are written by
// the signup and profile flows, not by this service.
type MongoProfileRepository struct {
	Collection *mongo.Collection
}

func NewMongoProfileRepository(db *mongo.Database, collectionName string) *MongoProfileRepository {
	return &MongoProfileRepository{
		Collection: db.Collection(collectionName),
	}
}

func (r *MongoProfileRepository) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	opts := options.FindOne().SetProjection(bson.M{
		"_id":            1,
		"role":           1,
		"is_super_admin": 1,
		"full_name":      1,
		"email":          1,
		"status":         1,
		"created_at":     1,
		"updated_at":     1,
	})

	var profile model.Profile
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}
