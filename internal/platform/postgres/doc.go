// Package postgres provides the PostgreSQL backend: connection setup through
// the pgx stdlib driver, mapping of PostgreSQL error codes to store errors,
// and the embedded goose migrations that create the schema.
// The queries themselves live in the sqlstore package.
package postgres
