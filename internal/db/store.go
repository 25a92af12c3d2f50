package db

import (
	"context"
	"fmt"

	"messageboard/internal/app/thread"
	"messageboard/internal/config"

	"go.uber.org/zap"
)

// Store is the persistence handle shared by all request handlers. It is
// opened once at startup and closed at shutdown.
type Store struct {
	Driver  string
	Threads thread.Repository
	close   func(ctx context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the backend selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		gdb, err := Connect(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := Migrate(gdb, logger); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		return &Store{
			Driver:  cfg.StoreDriver,
			Threads: thread.NewRepository(gdb),
			close: func(context.Context) error {
				sqlDB, err := gdb.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil

	case config.StoreDriverMongo:
		client, err := ConnectMongo(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		return &Store{
			Driver:  cfg.StoreDriver,
			Threads: thread.NewMongoRepository(client.Database(cfg.MongoDB)),
			close:   client.Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
