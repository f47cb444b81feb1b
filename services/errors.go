package services

import "errors"

// Sentinel errors the controllers map onto HTTP statuses. Anything not in
// this list is treated as a store failure and reported as a server error.
var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrPackageNotFound      = errors.New("event package not found")
	ErrMissingFields        = errors.New("missing required fields")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidDate          = errors.New("invalid preferred date")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)
