// internal/bootstrap/bootstrap.go

// Package bootstrap brings an already-deployed relational store of unknown
// shape up to the current schema on every cold start. The evolution is
// forward-only and idempotent: it only ever adds structure, never removes or
// rewrites it, and the full plan can run concurrently from several instances
// racing the same deployment.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
)

// Engine executes the evolution plan against a store.
type Engine struct {
	db  *sql.DB
	log *slog.Logger
}

func New(db *sql.DB, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{db: db, log: log}
}

// Run executes every step of the plan in order. Any failure other than a
// lost creation race aborts the run; the caller must refuse to serve traffic
// against a half-evolved store.
func (e *Engine) Run(ctx context.Context) error {
	for _, step := range Plan() {
		if err := e.runStep(ctx, step); err != nil {
			return fmt.Errorf("bootstrap step %q: %w", step.Name, err)
		}
		e.log.Debug("bootstrap step applied", "step", step.Name)
	}
	e.log.Info("schema bootstrap complete", "steps", len(Plan()))
	return nil
}

func (e *Engine) runStep(ctx context.Context, step Step) error {
	for _, stmt := range step.Statements {
		if _, err := e.db.ExecContext(ctx, stmt); err != nil {
			// Conditional creation still races between instances: both can
			// pass the existence check and one loses the actual create.
			// The object exists either way, which is the state the step
			// wanted.
			if IsDuplicateObject(err) {
				e.log.Warn("bootstrap statement lost a creation race, continuing",
					"step", step.Name, "error", err)
				continue
			}
			return err
		}
	}
	return nil
}

// Postgres error codes for "the thing you are creating already exists".
const (
	codeUniqueViolation  = "23505"
	codeDuplicateColumn  = "42701"
	codeDuplicateTable   = "42P07"
	codeDuplicateObject  = "42710"
	codeDuplicateAlias   = "42712"
	codeDuplicateFuncDef = "42723"
)

// IsDuplicateObject reports whether err is a Postgres duplicate-object
// outcome that a re-run or a concurrent run of the same plan can produce.
func IsDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case codeUniqueViolation, codeDuplicateColumn, codeDuplicateTable,
		codeDuplicateObject, codeDuplicateAlias, codeDuplicateFuncDef:
		return true
	}
	return false
}
