// Package service contains the station and line use cases. It owns the
// business rules that the stores do not enforce on their own, chiefly name
// uniqueness, and translates store errors into the domain errors the API
// layer maps to HTTP responses.
//
// Services receive their dependencies through constructor injection and
// depend only on the store interfaces, never on a concrete backend.
package service
