package apperrors

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrStoreFull          = errors.New("store capacity exceeded")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrPassengerNotFound  = errors.New("passenger not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAlreadyCancelled   = errors.New("already cancelled")
	ErrNoSeatsAvailable   = errors.New("no seats available")
	ErrInvalidCapacity    = errors.New("total seats below booked count")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthorized      = errors.New("not authorized")
)
