// Package domain contains the core business entities of the subway network,
// stations and lines, together with the errors that describe why an operation
// on them was rejected. It has no knowledge of HTTP or of any storage engine.
package domain
