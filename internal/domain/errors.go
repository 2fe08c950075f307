package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip or itinerary item does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrCorruptData is returned by the store when the data file exists but
// cannot be decoded. Surfaced instead of silently starting with an empty
// collection, which would overwrite the file on the next save.
var ErrCorruptData = errors.New("corrupt data file")
