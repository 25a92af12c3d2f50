package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	unset(t, "SERVER_PORT", "STORE_DRIVER", "FRONTEND_URL", "SANITIZE_TEXT", "SHUTDOWN_TIMEOUT")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.SanitizeText)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.AllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MONGO")
	t.Setenv("FRONTEND_URL", "https://a.test, https://b.test ,")
	t.Setenv("SANITIZE_TEXT", "true")
	t.Setenv("LOG_MAX_BACKUPS", "not-a-number")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := LoadConfig()

	assert.Equal(t, StoreDriverMongo, cfg.StoreDriver)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.SanitizeText)
	assert.Equal(t, 3, cfg.LogMaxBackups)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	cfg := Config{StoreDriver: "sqlite", ServerPort: "8080"}
	assert.Error(t, cfg.Validate())

	cfg.StoreDriver = StoreDriverMongo
	cfg.ServerPort = ""
	assert.Error(t, cfg.Validate())
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5433", DBUser: "u", DBPass: "p", DBName: "board"}
	assert.Equal(t, "host=db user=u password=p dbname=board port=5433 sslmode=disable", cfg.PostgresDSN())
}

// unset clears keys for the duration of the test; t.Setenv restores them afterwards.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
