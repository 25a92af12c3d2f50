package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

type Config struct {
	ServerPort      string
	Env             string
	ShutdownTimeout time.Duration

	StoreDriver string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPass      string
	DBName      string
	MongoURI    string
	MongoDB     string

	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	AllowedOrigins []string
	SanitizeText   bool
	SeedDemo       bool
	SeedPassword   string
}

func LoadConfig() Config {
	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		shutdownTimeout = 10 * time.Second
	}

	return Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Env:             getEnv("ENV", "dev"),
		ShutdownTimeout: shutdownTimeout,

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DBHost:      getEnv("DB_HOST", "postgres"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPass:      getEnv("DB_PASSWORD", "password"),
		DBName:      getEnv("DB_NAME", "messageboard"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "messageboard"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogPath:       getEnv("LOG_PATH", ""),
		LogMaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 7),

		AllowedOrigins: getEnvAsList("FRONTEND_URL", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
		SanitizeText:   getEnvAsBool("SANITIZE_TEXT", false),
		SeedDemo:       getEnvAsBool("SEED_DEMO", false),
		SeedPassword:   getEnv("SEED_PASSWORD", ""),
	}
}

// Validate reports configuration that cannot be used to start the server.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverMongo:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	items := strings.Split(value, ",")
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
