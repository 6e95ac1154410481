package config_test

import (
	"testing"
	"time"

	"github.com/foodyhq/backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "foody", cfg.Database.Name)
	assert.Equal(t, "foody_session", cfg.Session.CookieName)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, cfg.Session.MaxAge, cfg.JWT.ExpiryPeriod,
		"token expiry must match the cookie max-age")
	assert.True(t, cfg.RunMigrations)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("CORS_ORIGINS", "https://foody.example, https://admin.foody.example ,")
	t.Setenv("RUN_MIGRATIONS", "off")

	cfg := config.Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t,
		[]string{"https://foody.example", "https://admin.foody.example"},
		cfg.Server.CORSOrigins)
	assert.False(t, cfg.RunMigrations)
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "hunter2")

	dsn := config.Load().DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "password=hunter2")
	assert.Contains(t, dsn, "search_path=public")
}

func TestDSNOmitsEmptyPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	assert.NotContains(t, config.Load().DSN(), "password=")
}
