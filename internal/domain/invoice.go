package domain

import (
	"time"

	"gorm.io/gorm"
)

// HotelService is an ancillary service that can be charged to a stay
// (laundry, minibar, airport pickup, ...).
type HotelService struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"uniqueIndex;size:100"`
	Price       Money          `json:"price"`
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (HotelService) TableName() string { return "services" }

// InvoiceDetail is one service charge on a booking. Name and price are
// snapshots of the service at the time the line was written, so later
// price changes never affect an open stay.
type InvoiceDetail struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	BookingID uint           `json:"booking_id" gorm:"index"`
	ServiceID uint           `json:"service_id"`
	Name      string         `json:"name" gorm:"size:100"`
	Price     Money          `json:"price"`
	Quantity  int            `json:"quantity"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Total is the line amount charged at checkout.
func (d InvoiceDetail) Total() Money {
	return d.Price * Money(d.Quantity)
}
