// internal/config/config.go
package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Session struct {
		CookieName string        `json:"cookie_name"`
		MaxAge     time.Duration `json:"max_age"`
	} `json:"session"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
		CORSOrigins  []string      `json:"cors_origins"`
	}
	Storage struct {
		Endpoint        string `json:"endpoint"`
		Region          string `json:"region"`
		Bucket          string `json:"bucket"`
		AccessKeyID     string `json:"access_key_id"`
		SecretAccessKey string `json:"secret_access_key"`
		PublicBaseURL   string `json:"public_base_url"`
	} `json:"storage"`
	PlaceholderImageURL string `json:"placeholder_image_url"`
	RunMigrations       bool   `json:"run_migrations"`
}

func Load() *Config {
	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "foody")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// JWT configuration. Token expiry matches the session cookie's max-age.
	cfg.JWT.Secret = getEnv("JWT_SECRET", "change-me")
	cfg.JWT.ExpiryPeriod = time.Hour * 24 * 30

	// Session cookie
	cfg.Session.CookieName = getEnv("SESSION_COOKIE", "foody_session")
	cfg.Session.MaxAge = time.Hour * 24 * 30

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.CORSOrigins = splitList(getEnv("CORS_ORIGINS", ""))

	// Object storage (S3-compatible; an R2 account endpoint works as-is)
	cfg.Storage.Endpoint = getEnv("R2_ENDPOINT", "")
	cfg.Storage.Region = getEnv("R2_REGION", "auto")
	cfg.Storage.Bucket = getEnv("R2_BUCKET", "")
	cfg.Storage.AccessKeyID = getEnv("R2_ACCESS_KEY_ID", "")
	cfg.Storage.SecretAccessKey = getEnv("R2_SECRET_ACCESS_KEY", "")
	cfg.Storage.PublicBaseURL = getEnv("R2_PUBLIC_BASE_URL", "")

	cfg.PlaceholderImageURL = getEnv("NO_PHOTO_URL", "https://foodyweb-production.up.railway.app/img/no-photo.png")

	switch strings.ToLower(getEnv("RUN_MIGRATIONS", "1")) {
	case "1", "true", "yes", "on":
		cfg.RunMigrations = true
	}

	return cfg
}

// DSN assembles the Postgres connection string the way the drivers expect it.
func (c *Config) DSN() string {
	parts := []string{
		"host=" + c.Database.Host,
		"port=" + c.Database.Port,
		"user=" + c.Database.User,
		"dbname=" + c.Database.Name,
		"sslmode=" + c.Database.SSLMode,
		"search_path=" + c.Database.SearchPath,
	}
	if c.Database.Password != "" {
		parts = append(parts, "password="+c.Database.Password)
	}
	return strings.Join(parts, " ")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
