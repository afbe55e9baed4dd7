// Package api handles incoming HTTP requests, request validation, and
// response formatting for the station and line resources. Handlers decode
// and validate input, call the services, and turn service errors into
// ErrorResponse bodies through MapError.
package api
