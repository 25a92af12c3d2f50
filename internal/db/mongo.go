package db

import (
	"context"
	"time"

	"messageboard/internal/app/thread"
	"messageboard/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func ConnectMongo(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetAppName("messageboard"))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	if err := thread.EnsureMongoIndexes(ctx, client.Database(cfg.MongoDB)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))
	return client, nil
}
