package repository

import (
	"context"
	"time"

	"adminguard/internal/authz/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAuditRepository implements AuditRepository using MongoDB
type MongoAuditRepository struct {
	Collection *mongo.Collection
	now        func() time.Time
}

// NewMongoAuditRepository creates a new MongoAuditRepository
func NewMongoAuditRepository(db *mongo.Database, collectionName string) *MongoAuditRepository {
	return &MongoAuditRepository{
		Collection: db.Collection(collectionName),
		now:        time.Now,
	}
}

// EnsureAuditIndexes creates indexes for efficient querying
func (r *MongoAuditRepository) EnsureAuditIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Recent actions
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
		// Per-admin trail
		{
			Keys: bson.D{
				{Key: "admin_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_admin_created_at"),
		},
		// Per-target trail
		{
			Keys: bson.D{
				{Key: "target_type", Value: 1},
				{Key: "target_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_target_created_at"),
		},
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// InsertAuditRecord appends a record. The creation time is always set here,
// whatever the caller supplied.
func (r *MongoAuditRepository) InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	record.CreatedAt = now().UTC()

	_, err := r.Collection.InsertOne(ctx, record)
	return err
}

// FindRecentAuditRecords returns the newest records first
func (r *MongoAuditRepository) FindRecentAuditRecords(ctx context.Context, limit int) ([]*model.AuditRecord, error) {
	if limit <= 0 {
		return []*model.AuditRecord{}, nil
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []*model.AuditRecord{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}
