package services

import "errors"

// Error kinds reported to callers. Controllers map these to HTTP statuses;
// everything else surfaces as a generic store failure. No operation retries.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("store unavailable")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
