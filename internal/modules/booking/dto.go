package booking

import (
	"time"

	"hotelier/internal/domain"
)

// Actor is the caller identity threaded explicitly into mutating
// operations instead of being read from ambient session state.
type Actor struct {
	UserID uint
	Role   domain.UserRole
}

type LineRequest struct {
	ID         uint      `json:"id"`
	RoomID     uint      `json:"room_id" validate:"required"`
	CheckinAt  time.Time `json:"checkin_at" validate:"required"`
	CheckoutAt time.Time `json:"checkout_at" validate:"required"`
}

type CreateBookingRequest struct {
	UserID     *uint         `json:"user_id"`
	GuestName  string        `json:"guest_name" validate:"required"`
	GuestEmail string        `json:"guest_email" validate:"omitempty,email"`
	GuestPhone string        `json:"guest_phone"`
	Deposit    int64         `json:"deposit" validate:"gte=0"`
	Note       string        `json:"note"`
	Lines      []LineRequest `json:"booking_details" validate:"required,min=1,dive"`
}

type UpdateBookingRequest struct {
	UserID     *uint         `json:"user_id"`
	GuestName  string        `json:"guest_name" validate:"required"`
	GuestEmail string        `json:"guest_email" validate:"omitempty,email"`
	GuestPhone string        `json:"guest_phone"`
	Deposit    int64         `json:"deposit" validate:"gte=0"`
	Note       string        `json:"note"`
	Lines      []LineRequest `json:"booking_details" validate:"required,min=1,dive"`
}

type AvailabilityRequest struct {
	CheckinAt  time.Time `json:"checkin_at" form:"checkin_at" binding:"required"`
	CheckoutAt time.Time `json:"checkout_at" form:"checkout_at" binding:"required"`
	RoomTypeID uint      `json:"room_type_id" form:"room_type_id"`
	RoomID     uint      `json:"room_id" form:"room_id"`
}

type ListFilter struct {
	GuestName  string                `form:"guest_name"`
	GuestEmail string                `form:"guest_email"`
	GuestPhone string                `form:"guest_phone"`
	Status     *domain.BookingStatus `form:"status"`
	Page       int                   `form:"page"`
	PerPage    int                   `form:"per_page"`
}

type CheckInRequest struct {
	DetailIDs []uint `json:"detail_ids" binding:"required"`
}
