package domain

import (
	"time"

	"gorm.io/gorm"
)

// BookingStatus is the booking lifecycle. PENDING..CHECK_OUT is the happy
// path; CANCELLED, NO_SHOW and EXPIRED are terminal side exits.
type BookingStatus int

const (
	BookingPending BookingStatus = iota + 1
	BookingConfirmed
	BookingCheckIn
	BookingCheckOut
	BookingCancelled
	BookingNoShow
	BookingExpired
)

func (s BookingStatus) String() string {
	switch s {
	case BookingPending:
		return "pending"
	case BookingConfirmed:
		return "confirmed"
	case BookingCheckIn:
		return "check_in"
	case BookingCheckOut:
		return "check_out"
	case BookingCancelled:
		return "cancelled"
	case BookingNoShow:
		return "no_show"
	case BookingExpired:
		return "expired"
	}
	return "unknown"
}

// Live reports whether the booking still holds its rooms. Only live
// bookings block availability.
func (s BookingStatus) Live() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckIn:
		return true
	case BookingCheckOut, BookingCancelled, BookingNoShow, BookingExpired:
		return false
	}
	return false
}

// Terminal reports whether the booking may be deleted.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingCheckOut, BookingCancelled, BookingNoShow, BookingExpired:
		return true
	case BookingPending, BookingConfirmed, BookingCheckIn:
		return false
	}
	return false
}

// LiveBookingStatuses is the status set that blocks room availability and
// the only set in which a booking is still updatable.
func LiveBookingStatuses() []BookingStatus {
	return []BookingStatus{BookingPending, BookingConfirmed, BookingCheckIn}
}

// DetailStatus is the per-room sub-state within a multi-room booking,
// used to track partial check-ins.
type DetailStatus int

const (
	DetailPending DetailStatus = iota + 1
	DetailCheckIn
)

func (s DetailStatus) String() string {
	switch s {
	case DetailPending:
		return "pending"
	case DetailCheckIn:
		return "check_in"
	}
	return "unknown"
}

// Booking is the aggregate root. A booking may belong to a registered
// user or to a walk-in guest identified only by name/email/phone.
type Booking struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Reference    string          `json:"reference" gorm:"size:36;uniqueIndex"`
	UserID       *uint           `json:"user_id"`
	User         *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	GuestName    string          `json:"guest_name"`
	GuestEmail   string          `json:"guest_email"`
	GuestPhone   string          `json:"guest_phone"`
	Deposit      Money           `json:"deposit"`
	TotalPayment Money           `json:"total_payment"`
	Note         string          `json:"note,omitempty" gorm:"type:text"`
	Status       BookingStatus   `json:"status"`
	CheckIn      *time.Time      `json:"check_in,omitempty"`
	CheckOut     *time.Time      `json:"check_out,omitempty"`
	Details      []BookingDetail `json:"details" gorm:"foreignKey:BookingID"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BookingDetail is one room reservation within a booking. PricePerUnit is
// a snapshot of the room type rate at booking time and is never
// recomputed retroactively. CheckoutAt includes the cleaning buffer.
type BookingDetail struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	BookingID    uint           `json:"booking_id" gorm:"index"`
	RoomID       uint           `json:"room_id" gorm:"index"`
	Room         *Room          `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CheckinAt    time.Time      `json:"checkin_at"`
	CheckoutAt   time.Time      `json:"checkout_at"`
	PricePerUnit Money          `json:"price_per_unit" gorm:"column:price_per_day"`
	Status       DetailStatus   `json:"status"`
	CheckedInAt  *time.Time     `json:"checked_in_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
