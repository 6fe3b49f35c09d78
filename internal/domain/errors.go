package domain

import "errors"

// Error taxonomy shared by every layer. Concrete failures wrap one of these
// with fmt.Errorf("%w: ...") so callers can branch with errors.Is.
var (
	// ErrValidation input rejected before any state change
	ErrValidation = errors.New("validation error")
	// ErrNotFound stale or unknown id; refetch and retry
	ErrNotFound = errors.New("not found")
	// ErrTransient simulated network failure; safe to retry manually
	ErrTransient = errors.New("a simulated network error occurred")
)
