// Package store defines interfaces for station and line persistence.
// These interfaces abstract the underlying data storage mechanism from
// the services, which own the business rules (such as name uniqueness)
// and translate store errors into domain errors.
package store
