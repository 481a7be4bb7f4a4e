// Package service holds the assignment and reporting engine. It sits
// between the HTTP handlers and the repositories, owning the business
// validation (existence, active flags, status values) while the store
// beneath it owns uniqueness. Everything here works against the narrow
// store interfaces in stores.go so the engine can be exercised without
// a database.
package service

import "errors"

// ErrNoFields is returned when an update call supplies no recognized
// fields. Handlers translate it into HTTP 400.
var ErrNoFields = errors.New("no fields to update")

// ErrValidation is returned when a caller-supplied value violates a
// business invariant that syntactic validation would not catch, such
// as a quantity below one or an unknown assignment status. Handlers
// translate it into HTTP 422. Wrap it with %w to attach detail.
var ErrValidation = errors.New("validation failed")
