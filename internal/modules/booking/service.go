package booking

import (
	"context"
	"errors"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Config carries the rate-policy knobs. They are injected rather than
// read from globals so pricing stays testable per deployment.
type Config struct {
	UnitHours      int
	CleaningBuffer time.Duration
	DefaultPerPage int
}

type Service struct {
	bookings repository.BookingStore
	rooms    RoomRepository
	cfg      Config
}

func NewService(bookings repository.BookingStore, rooms RoomRepository, cfg Config) *Service {
	if cfg.UnitHours <= 0 {
		cfg.UnitHours = 12
	}
	if cfg.DefaultPerPage <= 0 {
		cfg.DefaultPerPage = 15
	}
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		cfg:      cfg,
	}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Booking, int64, error) {
	if f.PerPage == 0 {
		f.PerPage = s.cfg.DefaultPerPage
	}
	return s.bookings.List(ctx, repository.BookingFilter{
		GuestName:  f.GuestName,
		GuestEmail: f.GuestEmail,
		GuestPhone: f.GuestPhone,
		Status:     f.Status,
		Page:       f.Page,
		PerPage:    f.PerPage,
	})
}

func (s *Service) ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id uint) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}

// CheckRoomAvailability returns the rooms free over [checkin, checkout).
// With a room id it returns that single room or a not-found error; with
// a room type id, the active rooms of that type; otherwise all rooms.
func (s *Service) CheckRoomAvailability(ctx context.Context, req AvailabilityRequest) ([]domain.Room, error) {
	if !req.CheckoutAt.After(req.CheckinAt) {
		return nil, ErrValidation
	}

	occupied, err := s.bookings.OccupiedRoomIDs(ctx, req.CheckinAt, req.CheckoutAt, 0)
	if err != nil {
		return nil, err
	}

	if req.RoomID != 0 {
		room, err := s.rooms.GetByID(ctx, req.RoomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &RoomNotFoundError{RoomID: req.RoomID}
			}
			return nil, err
		}
		for _, id := range occupied {
			if id == room.ID {
				return nil, &RoomNotFoundError{RoomID: req.RoomID}
			}
		}
		return []domain.Room{*room}, nil
	}

	return s.rooms.ListAvailable(ctx, req.RoomTypeID, occupied)
}

// Create books one or more rooms in a single transaction. A booking tied
// to a user account starts PENDING; a walk-in booking starts CONFIRMED.
// Availability is checked twice: once up front for a friendly error, and
// again under row locks inside the transaction that writes the lines.
func (s *Service) Create(ctx context.Context, actor Actor, req CreateBookingRequest) (*domain.Booking, error) {
	if len(req.Lines) == 0 || req.Deposit < 0 {
		return nil, ErrValidation
	}

	userID := req.UserID
	if actor.Role == domain.RoleGuest {
		id := actor.UserID
		userID = &id
	}

	rooms, err := s.roomsForLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}
	if err := validateLines(req.Lines, rooms); err != nil {
		return nil, err
	}
	if err := s.checkAvailability(ctx, s.bookings, req.Lines, rooms, 0, false); err != nil {
		return nil, err
	}

	status := domain.BookingConfirmed
	if userID != nil {
		status = domain.BookingPending
	}

	b := &domain.Booking{
		Reference:  uuid.NewString(),
		UserID:     userID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		Deposit:    domain.Money(req.Deposit),
		Note:       req.Note,
		Status:     status,
	}

	var total domain.Money
	for _, line := range req.Lines {
		room := rooms[line.RoomID]
		rate := room.RoomType.Price
		_, lineTotal := priceLine(rate, line.CheckinAt, line.CheckoutAt, s.cfg.UnitHours)
		total += lineTotal

		b.Details = append(b.Details, domain.BookingDetail{
			RoomID:       line.RoomID,
			CheckinAt:    line.CheckinAt,
			CheckoutAt:   line.CheckoutAt.Add(s.cfg.CleaningBuffer),
			PricePerUnit: rate,
			Status:       domain.DetailPending,
		})
	}
	b.TotalPayment = total

	err = s.bookings.Transaction(ctx, func(tx repository.BookingStore) error {
		if err := s.checkAvailability(ctx, tx, req.Lines, rooms, 0, true); err != nil {
			return err
		}
		return tx.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update applies bulk-replace semantics to the booking's lines as an
// explicit reconcile: incoming lines keyed by id are kept (sub-status
// and created_at preserved), lines without an id are inserted as
// PENDING, and existing lines missing from the request are deleted —
// unless one of them is already checked in, which aborts the update.
func (s *Service) Update(ctx context.Context, actor Actor, id uint, req UpdateBookingRequest) (*domain.Booking, error) {
	if len(req.Lines) == 0 || req.Deposit < 0 {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByIDInStatuses(ctx, id, domain.LiveBookingStatuses())
	if err != nil {
		return nil, notFound(err)
	}
	if actor.Role == domain.RoleGuest && (b.UserID == nil || *b.UserID != actor.UserID) {
		return nil, ErrNotFound
	}

	rooms, err := s.roomsForLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}
	if err := validateLines(req.Lines, rooms); err != nil {
		return nil, err
	}

	existing := make(map[uint]domain.BookingDetail, len(b.Details))
	for _, d := range b.Details {
		existing[d.ID] = d
	}

	incoming := make(map[uint]bool, len(req.Lines))
	hasNew := false
	for _, line := range req.Lines {
		if line.ID == 0 {
			hasNew = true
			continue
		}
		if _, ok := existing[line.ID]; !ok {
			return nil, ErrValidation
		}
		incoming[line.ID] = true
	}

	var toDelete []uint
	for detailID, d := range existing {
		if !incoming[detailID] {
			if d.Status == domain.DetailCheckIn {
				return nil, ErrCheckedInRemoval
			}
			toDelete = append(toDelete, detailID)
		}
	}

	if err := s.checkAvailability(ctx, s.bookings, req.Lines, rooms, b.ID, false); err != nil {
		return nil, err
	}

	now := time.Now()
	details := make([]domain.BookingDetail, 0, len(req.Lines))
	var total domain.Money
	for _, line := range req.Lines {
		room := rooms[line.RoomID]
		rate := room.RoomType.Price
		_, lineTotal := priceLine(rate, line.CheckinAt, line.CheckoutAt, s.cfg.UnitHours)
		total += lineTotal

		d := domain.BookingDetail{
			ID:           line.ID,
			BookingID:    b.ID,
			RoomID:       line.RoomID,
			CheckinAt:    line.CheckinAt,
			CheckoutAt:   line.CheckoutAt.Add(s.cfg.CleaningBuffer),
			PricePerUnit: rate,
			UpdatedAt:    now,
		}
		if line.ID == 0 {
			d.Status = domain.DetailPending
			d.CreatedAt = now
		} else {
			prev := existing[line.ID]
			d.Status = prev.Status
			d.CheckedInAt = prev.CheckedInAt
			d.CreatedAt = prev.CreatedAt
		}
		details = append(details, d)
	}

	if actor.Role == domain.RoleAdmin {
		b.UserID = req.UserID
	}
	b.GuestName = req.GuestName
	b.GuestEmail = req.GuestEmail
	b.GuestPhone = req.GuestPhone
	b.Deposit = domain.Money(req.Deposit)
	b.Note = req.Note
	b.TotalPayment = total
	if hasNew {
		b.Status = domain.BookingConfirmed
	}

	err = s.bookings.Transaction(ctx, func(tx repository.BookingStore) error {
		checkedIn, err := tx.CheckedInDetailExists(ctx, b.ID, toDelete)
		if err != nil {
			return err
		}
		if checkedIn {
			return ErrCheckedInRemoval
		}
		if err := s.checkAvailability(ctx, tx, req.Lines, rooms, b.ID, true); err != nil {
			return err
		}
		if err := tx.DeleteDetails(ctx, b.ID, toDelete); err != nil {
			return err
		}
		if err := tx.Save(ctx, b); err != nil {
			return err
		}
		return tx.UpsertDetails(ctx, details)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, b.ID)
}

func (s *Service) Confirm(ctx context.Context, id uint) error {
	return s.transition(ctx, id, []domain.BookingStatus{domain.BookingPending}, domain.BookingConfirmed)
}

func (s *Service) Cancel(ctx context.Context, id uint) error {
	return s.transition(ctx, id, []domain.BookingStatus{domain.BookingPending}, domain.BookingCancelled)
}

func (s *Service) NoShow(ctx context.Context, id uint) error {
	return s.transition(ctx, id, []domain.BookingStatus{domain.BookingConfirmed}, domain.BookingNoShow)
}

func (s *Service) transition(ctx context.Context, id uint, from []domain.BookingStatus, to domain.BookingStatus) error {
	ok, err := s.bookings.Transition(ctx, id, from, to, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// CheckInGuest marks the given lines of a CONFIRMED booking as checked
// in. Guests of a multi-room booking may arrive at different times; the
// booking itself moves to CHECK_IN only once no line remains pending.
func (s *Service) CheckInGuest(ctx context.Context, bookingID uint, detailIDs []uint) error {
	if len(detailIDs) == 0 {
		return ErrValidation
	}

	b, err := s.bookings.GetByIDInStatuses(ctx, bookingID, []domain.BookingStatus{domain.BookingConfirmed})
	if err != nil {
		return notFound(err)
	}

	own := make(map[uint]bool, len(b.Details))
	for _, d := range b.Details {
		own[d.ID] = true
	}
	for _, detailID := range detailIDs {
		if !own[detailID] {
			return ErrValidation
		}
	}

	now := time.Now()
	return s.bookings.Transaction(ctx, func(tx repository.BookingStore) error {
		if err := tx.MarkDetailsCheckedIn(ctx, b.ID, detailIDs, now); err != nil {
			return err
		}
		pending, err := tx.HasDetailsNotCheckedIn(ctx, b.ID)
		if err != nil {
			return err
		}
		if !pending {
			_, err = tx.Transition(ctx, b.ID, []domain.BookingStatus{domain.BookingConfirmed}, domain.BookingCheckIn, now)
			return err
		}
		return nil
	})
}

// Checkout closes the stay: the room charge accumulated on the booking
// is combined with the service charges recorded against it, minus the
// deposit taken upfront. The service charge is summed fresh inside the
// same transaction, never cached.
func (s *Service) Checkout(ctx context.Context, id uint) (*domain.Booking, error) {
	var out *domain.Booking
	err := s.bookings.Transaction(ctx, func(tx repository.BookingStore) error {
		b, err := tx.GetByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		if b.Status != domain.BookingCheckIn {
			return ErrNotCheckedIn
		}

		serviceCharge, err := tx.ServiceCharge(ctx, b.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		b.TotalPayment = b.TotalPayment + serviceCharge - b.Deposit
		b.Status = domain.BookingCheckOut
		b.CheckOut = &now

		if err := tx.Save(ctx, b); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete soft-deletes a booking. Only bookings in a terminal status can
// go; anything still live holds rooms and must be cancelled first.
func (s *Service) Delete(ctx context.Context, id uint) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if !b.Status.Terminal() {
		return ErrNotDeletable
	}
	return s.bookings.SoftDelete(ctx, b.ID)
}

func (s *Service) roomsForLines(ctx context.Context, lines []LineRequest) (map[uint]domain.Room, error) {
	seen := make(map[uint]bool, len(lines))
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		if !seen[line.RoomID] {
			seen[line.RoomID] = true
			ids = append(ids, line.RoomID)
		}
	}

	rooms, err := s.rooms.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		room, ok := rooms[id]
		if !ok || room.RoomType == nil {
			return nil, &RoomNotFoundError{RoomID: id}
		}
	}
	return rooms, nil
}

// validateLines rejects inverted date ranges and two lines in the same
// request claiming the same room over overlapping ranges — a conflict
// the database scan cannot see because neither line is stored yet.
func validateLines(lines []LineRequest, rooms map[uint]domain.Room) error {
	for _, line := range lines {
		if !line.CheckoutAt.After(line.CheckinAt) {
			return ErrValidation
		}
	}
	for i := range lines {
		for j := i + 1; j < len(lines); j++ {
			if lines[i].RoomID != lines[j].RoomID {
				continue
			}
			if overlaps(lines[i].CheckinAt, lines[i].CheckoutAt, lines[j].CheckinAt, lines[j].CheckoutAt) {
				room := rooms[lines[j].RoomID]
				return &ConflictError{
					RoomID:     room.ID,
					RoomName:   room.Name,
					CheckinAt:  lines[j].CheckinAt,
					CheckoutAt: lines[j].CheckoutAt,
				}
			}
		}
	}
	return nil
}

func (s *Service) checkAvailability(ctx context.Context, store repository.BookingStore, lines []LineRequest, rooms map[uint]domain.Room, excludeBookingID uint, lock bool) error {
	for _, line := range lines {
		count, err := store.CountOverlapping(ctx, line.RoomID, line.CheckinAt, line.CheckoutAt, excludeBookingID, lock)
		if err != nil {
			return err
		}
		if count > 0 {
			room := rooms[line.RoomID]
			return &ConflictError{
				RoomID:     room.ID,
				RoomName:   room.Name,
				CheckinAt:  line.CheckinAt,
				CheckoutAt: line.CheckoutAt,
			}
		}
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
