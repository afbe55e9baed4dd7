// Package sqlite provides the SQLite backend for single-node deployments and
// local development: connection setup through mattn/go-sqlite3, mapping of
// SQLite constraint errors to store errors, and embedded goose migrations.
package sqlite
