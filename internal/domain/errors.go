package domain

import "errors"

var (
	// ErrFlightNotFound means the referenced flight does not exist.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrNoSeatsAvailable means the flight has no remaining seats.
	ErrNoSeatsAvailable = errors.New("no seats available")

	// ErrValidation wraps rejected request input.
	ErrValidation = errors.New("validation failed")
)
