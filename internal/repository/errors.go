// Package repository contains data access logic separated from HTTP
// handlers.  This file defines error values shared across repositories.
// Sentinels let handlers map failure modes to HTTP statuses without
// string matching: the per-entity not-found sentinels become 404s and
// ErrConflict becomes a 409.
package repository

import "errors"

// ErrConflict is returned when a write cannot proceed because of
// conflicting state, most importantly an assignment whose date range
// overlaps an existing assignment on the same bed.  Handlers translate
// this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
