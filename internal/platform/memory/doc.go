// Package memory provides in-process implementations of the store interfaces.
// Records are kept in insertion order and every mutation is serialised by a
// mutex, so the name-uniqueness check and the insert happen atomically.
// It is the default backend and the one used by the HTTP acceptance tests.
package memory
