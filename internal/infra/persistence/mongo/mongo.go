// Package mongo contains the MongoDB implementation of the persistence layer.
package mongo

import (
	"context"
	"log/slog"

	"showmyshop/config"
	"showmyshop/internal/domain/lifecycle"
	"showmyshop/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	shopsCollection   = "shops"
	reviewsCollection = "reviews"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("MongoDB connected",
				slog.String("database", cfg.Database),
				slog.Bool("transactions", cfg.Transactions),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the listing and review page indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(shopsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "vendorEmail", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
	}); err != nil {
		return errors.Wrap(err, "failed to create shop indexes")
	}

	if _, err := db.Collection(reviewsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "shopId", Value: 1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
	}); err != nil {
		return errors.Wrap(err, "failed to create review indexes")
	}

	return nil
}

// bind attaches the session, if any, to ctx.
func bind(ctx context.Context, sess mongo.Session) context.Context {
	if sess == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, sess)
}
