package services

import "errors"

// Standard service errors surfaced by the orchestration stores
var (
	// Input validation errors
	ErrInvalidPort  = errors.New("port must be a non-negative integer")
	ErrInvalidInput = errors.New("invalid input provided")

	// Selection errors
	ErrNoAccountSelected      = errors.New("no account selected")
	ErrNoThreadSelected       = errors.New("no thread selected")
	ErrNoSubscriptionSelected = errors.New("no subscription selected")

	// Backend errors
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// IsSelectionError reports whether an error only means nothing is
// selected yet, which callers treat as a no-op rather than a failure.
func IsSelectionError(err error) bool {
	return errors.Is(err, ErrNoAccountSelected) ||
		errors.Is(err, ErrNoThreadSelected) ||
		errors.Is(err, ErrNoSubscriptionSelected)
}
