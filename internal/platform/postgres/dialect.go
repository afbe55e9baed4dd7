package postgres

import (
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect is the sqlstore.Dialect for PostgreSQL.
type Dialect struct{}

// Name implements sqlstore.Dialect.
func (Dialect) Name() string { return "postgres" }

// MapError implements sqlstore.Dialect.
func (Dialect) MapError(err error) error { return MapError(err) }

// GooseDialect implements sqlstore.Dialect.
func (Dialect) GooseDialect() goose.Dialect { return goose.DialectPostgres }

// Migrations implements sqlstore.Dialect.
func (Dialect) Migrations() fs.FS { return Migrations() }
