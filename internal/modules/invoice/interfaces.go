package invoice

import (
	"context"

	"hotelier/internal/domain"
)

// BookingReader gates invoice writes on the booking's lifecycle status.
type BookingReader interface {
	GetByIDInStatuses(ctx context.Context, id uint, statuses []domain.BookingStatus) (*domain.Booking, error)
}

type InvoiceStore interface {
	ListByBooking(ctx context.Context, bookingID uint) ([]domain.InvoiceDetail, error)
	Upsert(ctx context.Context, details []domain.InvoiceDetail) error
	Delete(ctx context.Context, bookingID, id uint) (bool, error)
}

// ServiceReader resolves the catalog rows whose name and price get
// snapshotted onto new invoice lines.
type ServiceReader interface {
	GetByID(ctx context.Context, id uint) (*domain.HotelService, error)
}
