// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them to HTTP status codes without inspecting driver-specific errors.
package repository

import "errors"

// ErrProductNotFound is returned when no product row matches the requested
// id. Handlers translate this into an HTTP 404 response.
var ErrProductNotFound = errors.New("product not found")

// ErrUsernameExists is returned when registration collides with an existing
// username. Handlers translate this into an HTTP 400 response.
var ErrUsernameExists = errors.New("username already exists")
