// Package repository implements parameterized-SQL persistence for the
// event-ops domain. Sentinel errors declared here let services and
// handlers distinguish failure classes without inspecting driver
// errors: ErrNotFound aborts the operation that referenced the missing
// row, ErrEmailExists maps to a conflict on the team surface.
package repository

import "errors"

// ErrNotFound is returned when a referenced entity does not exist.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when creating a login identity whose
// email address is already taken. Handlers translate this into an
// HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
