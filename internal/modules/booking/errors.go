package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound covers both a missing booking and a booking outside the
	// status set an operation requires.
	ErrNotFound   = errors.New("booking not found")
	ErrValidation = errors.New("invalid booking payload")

	ErrCheckedInRemoval = errors.New("cannot remove a room that is checked-in")
	ErrNotCheckedIn     = errors.New("booking is not in CHECK_IN status")
	ErrNotDeletable     = errors.New("booking cannot be deleted in its current status")
)

// ConflictError reports a room/date pair that overlaps a live booking.
type ConflictError struct {
	RoomID     uint
	RoomName   string
	CheckinAt  time.Time
	CheckoutAt time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %s is not available from %s to %s",
		e.RoomName,
		e.CheckinAt.Format(time.RFC3339),
		e.CheckoutAt.Format(time.RFC3339))
}

// RoomNotFoundError reports a requested room id that does not exist.
type RoomNotFoundError struct {
	RoomID uint
}

func (e *RoomNotFoundError) Error() string {
	return fmt.Sprintf("room with id %d not found", e.RoomID)
}
