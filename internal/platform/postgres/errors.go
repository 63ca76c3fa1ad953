package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, such as a duplicate email or follow edge.
func isUniqueViolation(err error) bool {
	return hasPgCode(err, uniqueViolationCode)
}

// isForeignKeyViolation checks if the given error is a PostgreSQL foreign
// key violation, such as a post referencing a missing author.
func isForeignKeyViolation(err error) bool {
	return hasPgCode(err, foreignKeyViolationCode)
}

// isCheckViolation checks if the given error is a PostgreSQL CHECK
// constraint violation, such as a self-referencing follow edge.
func isCheckViolation(err error) bool {
	return hasPgCode(err, checkViolationCode)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
