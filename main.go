package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "messageboard/docs"
	"messageboard/internal/app"
	"messageboard/internal/config"
	"messageboard/internal/utils"

	"go.uber.org/zap"
)

// @title Message Board API
// @version 1.0
// @description Anonymous boards with threads, replies, reporting and password protected deletion.
// @BasePath /
func main() {
	bootLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	utils.LoadEnv(bootLogger)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		bootLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	logger, err := utils.NewLogger(&cfg)
	if err != nil {
		bootLogger.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer logger.Sync()

	logger.Info("Config loaded",
		zap.String("server_port", cfg.ServerPort),
		zap.String("store_driver", cfg.StoreDriver),
		zap.String("db_host", cfg.DBHost),
		zap.String("env", cfg.Env),
	)

	application, err := app.Bootstrap(context.Background(), &cfg, logger)
	if err != nil {
		logger.Fatal("Failed to bootstrap application", zap.Error(err))
	}

	addr := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    addr,
		Handler: application.Router.Engine,
	}

	go func() {
		logger.Info("Server started", zap.String("addr", "localhost"+addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped with error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := application.Store.Close(ctx); err != nil {
		logger.Error("Failed to close store", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
