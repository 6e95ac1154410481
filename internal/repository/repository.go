// internal/repository/repository.go

// Package repository holds the gorm-backed data access layer. Each repository
// exposes a narrow interface so services can be tested against mocks.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The constraint is the final arbiter for business uniqueness;
// application-level existence checks are only an optimization.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
