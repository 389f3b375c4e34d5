package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist: no open stay on exit, no closed stay to invoice,
// no open stay when one is looked up by plate.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. empty plate, unknown event kind).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write would break the one-open-stay-per-plate
// rule, i.e. an entry is recorded for a plate that is already parked.
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("conflict")
