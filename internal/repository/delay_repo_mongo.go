package repository

import (
	"context"

	"github.com/Domenick1991/airops/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FlightDelayRepository interface {
	Append(ctx context.Context, delay *domain.FlightDelay) error
	FindByFlight(ctx context.Context, flightID int64) ([]domain.FlightDelay, error)
}

type MongoFlightDelayRepository struct {
	collection *mongo.Collection
}

func NewFlightDelayRepository(ctx context.Context, db *mongo.Database) (FlightDelayRepository, error) {
	collection := db.Collection("flight_delays")
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "flightId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	return &MongoFlightDelayRepository{collection: collection}, nil
}

func (r *MongoFlightDelayRepository) Append(ctx context.Context, delay *domain.FlightDelay) error {
	_, err := r.collection.InsertOne(ctx, delay)
	return err
}

// FindByFlight returns the delay history of a flight, oldest first.
func (r *MongoFlightDelayRepository) FindByFlight(ctx context.Context, flightID int64) ([]domain.FlightDelay, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"flightId": flightID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	delays := []domain.FlightDelay{}
	if err := cursor.All(ctx, &delays); err != nil {
		return nil, err
	}
	return delays, nil
}

var _ FlightDelayRepository = (*MongoFlightDelayRepository)(nil)
