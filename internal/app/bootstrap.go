package app

import (
	"context"

	"messageboard/internal/app/board"
	"messageboard/internal/app/health"
	"messageboard/internal/app/reply"
	"messageboard/internal/app/thread"
	"messageboard/internal/config"
	"messageboard/internal/db"
	"messageboard/internal/db/seeder"
	"messageboard/internal/router"
	"messageboard/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Application struct {
	Router *router.Router
	Store  *db.Store
}

func Bootstrap(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := db.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.SeedDemo {
		password := cfg.SeedPassword
		if password == "" {
			password = uuid.NewString()
		}
		threadService := thread.NewService(store.Threads, utils.NewTextFilter(cfg.SanitizeText), logger)
		seed := seeder.NewSeeder(threadService, store.Threads, password, logger)
		if err := seed.Seed(ctx); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	r := NewRouter(cfg, store.Driver, store.Threads, logger)
	r.RegisterSwaggerRoutes()

	return &Application{
		Router: r,
		Store:  store,
	}, nil
}

// NewRouter wires the board API on top of a thread store.
func NewRouter(cfg *config.Config, storeName string, repo thread.Repository, logger *zap.Logger) *router.Router {
	filter := utils.NewTextFilter(cfg.SanitizeText)
	threadService := thread.NewService(repo, filter, logger)
	replyService := reply.NewService(repo, filter, logger)
	boardService := board.NewService(repo)
	healthService := health.NewService(&utils.HealthChecker{
		Deps: map[string]utils.Pinger{storeName: repo},
	})

	r := router.NewRouter(logger, cfg.AllowedOrigins)

	r.RegisterHealthRoutes(health.NewHandler(healthService))
	r.RegisterBoardRoutes(board.NewHandler(boardService, logger))
	r.RegisterThreadRoutes(thread.NewHandler(threadService, logger))
	r.RegisterReplyRoutes(reply.NewHandler(replyService, logger))

	return r
}
