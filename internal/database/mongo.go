package database

import (
	"context"
	"fmt"

	"github.com/TauhidOSD/yoga-master-server/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names inside the application database.
const (
	CollectionUsers    = "users"
	CollectionClasses  = "classes"
	CollectionCart     = "cart"
	CollectionPayments = "payments"
	CollectionEnrolled = "enrolled"
	CollectionApplied  = "applied"
)

// NewMongoClient creates and validates a MongoDB client using the Stable API v1.
func NewMongoClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI).
		SetTimeout(cfg.MongoOpTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Info().
		Str("database", cfg.MongoDatabase).
		Dur("op_timeout", cfg.MongoOpTimeout).
		Msg("MongoDB connected")

	return client, nil
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
// CreateMany is idempotent for identical index specs.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	specs := map[string][]mongo.IndexModel{
		CollectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		CollectionClasses: {
			{Keys: bson.D{{Key: "instructorEmail", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "totalEnrolled", Value: -1}}},
		},
		CollectionCart: {
			{Keys: bson.D{{Key: "userMail", Value: 1}, {Key: "classId", Value: 1}}},
		},
		CollectionPayments: {
			{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "date", Value: -1}}},
		},
		CollectionEnrolled: {
			{Keys: bson.D{{Key: "userEmail", Value: 1}}},
		},
		CollectionApplied: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
	}

	for name, models := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}

	log.Info().Int("collections", len(specs)).Msg("MongoDB indexes ensured")
	return nil
}
