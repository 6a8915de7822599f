package repository

import (
	"context"
	"time"

	"aptbook/pkg/config"
	"aptbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const HoldCollectionName = "Booking_holds"

// BookingHoldRepository provides per-apartment advisory locks. A hold
// insert fails with a duplicate key error while another request holds the
// same apartment; holds auto-expire through the TTL index.
type BookingHoldRepository interface {
	Create(ctx context.Context, hold *model.BookingHold) (*model.BookingHold, error)
	Delete(ctx context.Context, holdID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingHoldRepository struct {
	collection *mongo.Collection
}

func NewBookingHoldRepository(cfg *config.Config) BookingHoldRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingHoldRepository{
		collection: db.Collection(HoldCollectionName),
	}
}

func (r *mongoBookingHoldRepository) Create(ctx context.Context, hold *model.BookingHold) (*model.BookingHold, error) {
	hold.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, hold); err != nil {
		return nil, err
	}

	return hold, nil
}

func (r *mongoBookingHoldRepository) Delete(ctx context.Context, holdID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": holdID})
	return err
}

// EnsureIndexes creates the TTL index so a crashed request cannot wedge an
// apartment past the hold TTL.
func (r *mongoBookingHoldRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}

	_, err := r.collection.Indexes().CreateOne(ctx, index)
	return err
}
