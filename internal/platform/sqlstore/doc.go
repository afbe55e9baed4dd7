// Package sqlstore implements the store interfaces on top of database/sql.
// The queries are portable between PostgreSQL and SQLite; everything that
// differs between the two (driver error codes) is supplied by a Dialect.
//
// Name uniqueness is enforced by a UNIQUE constraint on the name column, so
// concurrent inserts of the same name cannot both succeed.
package sqlstore
