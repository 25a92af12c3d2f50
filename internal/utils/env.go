package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv loads variables from the given .env files (".env" when none are
// given). Variables already present in the environment win.
func LoadEnv(logger *zap.Logger, files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Warn("ENV file not found or failed to load, using defaults")
	} else {
		logger.Info("ENV file loaded successfully")
	}
}
