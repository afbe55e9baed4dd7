package sqlite

import (
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect is the sqlstore.Dialect for SQLite.
type Dialect struct{}

// Name implements sqlstore.Dialect.
func (Dialect) Name() string { return "sqlite" }

// MapError implements sqlstore.Dialect.
func (Dialect) MapError(err error) error { return MapError(err) }

// GooseDialect implements sqlstore.Dialect.
func (Dialect) GooseDialect() goose.Dialect { return goose.DialectSQLite3 }

// Migrations implements sqlstore.Dialect.
func (Dialect) Migrations() fs.FS { return Migrations() }
