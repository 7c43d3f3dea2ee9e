package invoice

import (
	"context"
	"errors"

	"hotelier/internal/domain"

	"gorm.io/gorm"
)

// chargeableStatuses is where service charges may be recorded: from the
// moment a booking is confirmed until it is archived after checkout.
// PENDING bookings may still evaporate, terminal ones are settled.
func chargeableStatuses() []domain.BookingStatus {
	return []domain.BookingStatus{
		domain.BookingConfirmed,
		domain.BookingCheckIn,
		domain.BookingCheckOut,
	}
}

type Service struct {
	bookings BookingReader
	invoices InvoiceStore
	services ServiceReader
}

func NewService(bookings BookingReader, invoices InvoiceStore, services ServiceReader) *Service {
	return &Service{
		bookings: bookings,
		invoices: invoices,
		services: services,
	}
}

func (s *Service) List(ctx context.Context, bookingID uint) ([]domain.InvoiceDetail, error) {
	if _, err := s.bookings.GetByIDInStatuses(ctx, bookingID, chargeableStatuses()); err != nil {
		return nil, bookingNotFound(err)
	}
	return s.invoices.ListByBooking(ctx, bookingID)
}

// Save upserts the given lines onto the booking's invoice. New lines
// snapshot the service's current name and price so later catalog edits
// never rewrite a guest's bill; existing lines keep their snapshot and
// only the quantity moves.
func (s *Service) Save(ctx context.Context, bookingID uint, req SaveRequest) ([]domain.InvoiceDetail, error) {
	if len(req.Lines) == 0 {
		return nil, ErrValidation
	}
	for _, line := range req.Lines {
		if line.Quantity < 1 {
			return nil, ErrValidation
		}
	}

	if _, err := s.bookings.GetByIDInStatuses(ctx, bookingID, chargeableStatuses()); err != nil {
		return nil, bookingNotFound(err)
	}

	existing, err := s.invoices.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]domain.InvoiceDetail, len(existing))
	for _, d := range existing {
		byID[d.ID] = d
	}

	details := make([]domain.InvoiceDetail, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.ID != 0 {
			prev, ok := byID[line.ID]
			if !ok {
				return nil, ErrDetailNotFound
			}
			prev.Quantity = line.Quantity
			details = append(details, prev)
			continue
		}

		svc, err := s.services.GetByID(ctx, line.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, err
		}
		details = append(details, domain.InvoiceDetail{
			BookingID: bookingID,
			ServiceID: svc.ID,
			Name:      svc.Name,
			Price:     svc.Price,
			Quantity:  line.Quantity,
		})
	}

	if err := s.invoices.Upsert(ctx, details); err != nil {
		return nil, err
	}
	return s.invoices.ListByBooking(ctx, bookingID)
}

func (s *Service) Delete(ctx context.Context, bookingID, detailID uint) error {
	if _, err := s.bookings.GetByIDInStatuses(ctx, bookingID, chargeableStatuses()); err != nil {
		return bookingNotFound(err)
	}

	deleted, err := s.invoices.Delete(ctx, bookingID, detailID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDetailNotFound
	}
	return nil
}

func bookingNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBookingNotFound
	}
	return err
}
