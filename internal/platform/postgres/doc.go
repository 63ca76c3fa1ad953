// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces, using database/sql over the pgx stdlib driver.
// Constraint violations are mapped to the store package's sentinel errors
// (unique violation to duplicates, missing rows to not-found) and schema
// management runs through goose with embedded migrations.
package postgres
