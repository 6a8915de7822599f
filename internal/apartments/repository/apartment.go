package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aptbook/pkg/config"
	"aptbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Apartments"

var ErrNotFound = errors.New("apartment not found")

type ApartmentRepository interface {
	Seed(ctx context.Context, seeds []config.ApartmentSeed) error
	FindByID(ctx context.Context, id string) (*model.Apartment, error)
	List(ctx context.Context) ([]*model.Apartment, error)
}

type mongoApartmentRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoApartmentRepository(cfg *config.Config) ApartmentRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoApartmentRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// Seed upserts the fixed apartment set. Safe to run on every startup; seeds
// never overwrite created_at on existing rows.
func (r *mongoApartmentRepository) Seed(ctx context.Context, seeds []config.ApartmentSeed) error {
	for _, seed := range seeds {
		filter := bson.M{"_id": seed.ID}
		update := bson.M{
			"$set": bson.M{
				"code": seed.Code,
				"name": seed.Name,
			},
			"$setOnInsert": bson.M{
				"created_at": time.Now().UTC().Truncate(time.Millisecond),
			},
		}
		opts := options.Update().SetUpsert(true)

		if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
			return fmt.Errorf("failed to seed apartment %s: %w", seed.ID, err)
		}
	}
	return nil
}

func (r *mongoApartmentRepository) FindByID(ctx context.Context, id string) (*model.Apartment, error) {
	var apartment model.Apartment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&apartment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find apartment: %w", err)
	}
	return &apartment, nil
}

func (r *mongoApartmentRepository) List(ctx context.Context) ([]*model.Apartment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list apartments: %w", err)
	}
	defer cursor.Close(ctx)

	var apartments []*model.Apartment
	if err = cursor.All(ctx, &apartments); err != nil {
		return nil, fmt.Errorf("failed to decode apartments: %w", err)
	}

	return apartments, nil
}
