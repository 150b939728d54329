package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DevelopmentDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("SENSITIVE_WORDS", "idiot, stupid ,,")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, []string{"idiot", "stupid"}, cfg.SensitiveWords)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Len(t, cfg.AllowedOrigins, 2)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitPeriod)
	assert.Equal(t, "both", cfg.NotificationMode)
}

func TestLoad_ProductionGuards(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "memory")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("JWT_SECRET", "short")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://lostfound.campus.edu")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://lostfound.campus.edu"}, cfg.AllowedOrigins)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := Load()

	assert.Error(t, err)
}

func TestGetDatabaseURL_FromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRESQL_HOST", "db")
	t.Setenv("POSTGRESQL_USER", "lf")
	t.Setenv("POSTGRESQL_PASSWORD", "p@ss")
	t.Setenv("POSTGRESQL_DBNAME", "lostfound")

	assert.Equal(t, "postgres://lf:p%40ss@db:5432/lostfound?sslmode=disable", getDatabaseURL())
}
