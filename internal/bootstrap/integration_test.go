package bootstrap_test

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/foodyhq/backend/internal/bootstrap"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
)

// TestRunIsIdempotent runs the full plan twice against a real database.
// Set TEST_DATABASE_URL to a throwaway Postgres instance to enable it.
func TestRunIsIdempotent(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	engine := bootstrap.New(db, logger)

	require.NoError(t, engine.Run(ctx), "first run against any prior state")
	require.NoError(t, engine.Run(ctx), "second run must be a no-op")

	// The evolved shape must satisfy the queries the rest of the system makes.
	for _, q := range []string{
		`SELECT id, phone, name, password_hash, created_at FROM users LIMIT 1`,
		`SELECT org_id, user_id, role FROM organization_users LIMIT 1`,
		`SELECT id, org_id, city, address, close_time, timezone FROM locations LIMIT 1`,
		`SELECT id, restaurant_id, api_key FROM merchants LIMIT 1`,
		`SELECT id, location_id, merchant_id, price, stock, expires_at, status FROM offers LIMIT 1`,
	} {
		rows, err := db.QueryContext(ctx, q)
		require.NoError(t, err, "query %s", q)
		rows.Close()
	}
}
