package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip or activity does not exist in the store. The store deliberately does
// not distinguish a malformed id from an absent one.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown category).
// Handlers should map this to HTTP 422 Unprocessable Entity.
//
// Partial updates are the one exception: invalid patch fields are skipped
// silently rather than rejected, see ActivityPatch.
var ErrValidation = errors.New("validation error")
