package db

import (
	"time"

	"messageboard/internal/app/thread"
	"messageboard/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	gLogger := gormlogger.New(
		zap.NewStdLog(logger.Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{Logger: gLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)

	return db, nil
}

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(&thread.Thread{}, &thread.Reply{}); err != nil {
		return err
	}
	logger.Info("Database migrated")
	return nil
}
