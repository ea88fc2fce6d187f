package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airops/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EmailLogRepository interface {
	Record(ctx context.Context, entry *domain.EmailLog) error
	FindByEventID(ctx context.Context, eventID string) (*domain.EmailLog, error)
}

type MongoEmailLogRepository struct {
	collection *mongo.Collection
}

func NewEmailLogRepository(ctx context.Context, db *mongo.Database) (EmailLogRepository, error) {
	collection := db.Collection("email_logs")
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"eventId": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "processedAt", Value: -1}}},
	})
	if err != nil {
		return nil, err
	}
	return &MongoEmailLogRepository{collection: collection}, nil
}

// Record upserts the outcome for an event so a redelivered message overwrites
// its earlier entry instead of failing on the unique index.
func (r *MongoEmailLogRepository) Record(ctx context.Context, entry *domain.EmailLog) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"eventId": entry.EventID}, entry, options.Replace().SetUpsert(true))
	return err
}

func (r *MongoEmailLogRepository) FindByEventID(ctx context.Context, eventID string) (*domain.EmailLog, error) {
	var entry domain.EmailLog
	err := r.collection.FindOne(ctx, bson.M{"eventId": eventID}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

var _ EmailLogRepository = (*MongoEmailLogRepository)(nil)
