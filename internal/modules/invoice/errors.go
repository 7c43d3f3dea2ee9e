package invoice

import "errors"

var (
	// ErrBookingNotFound also covers bookings whose status does not admit
	// service charges yet (or anymore).
	ErrBookingNotFound = errors.New("booking not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrDetailNotFound  = errors.New("invoice detail not found")
	ErrValidation      = errors.New("invalid invoice payload")
)
