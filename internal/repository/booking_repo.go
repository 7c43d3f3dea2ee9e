package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelier/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOverlap is returned when the database-level exclusion constraint on
// booking_details rejects an insert. It backstops the in-transaction
// overlap re-check under concurrent bookings for the same room.
var ErrOverlap = errors.New("overlapping booking rejected by constraint")

// overlapConstraint is the name of the optional PostgreSQL exclusion
// constraint on (room_id, tstzrange(checkin_at, checkout_at)).
const overlapConstraint = "booking_details_no_overlap"

// BookingFilter narrows and pages the booking list. PerPage -1 disables
// paging and returns everything.
type BookingFilter struct {
	GuestName  string
	GuestEmail string
	GuestPhone string
	Status     *domain.BookingStatus
	Page       int
	PerPage    int
}

// BookingStore is the persistence surface of the booking aggregate.
// Transaction yields a store bound to one database transaction; every
// mutating flow in the booking engine runs its writes through it so a
// booking header and its lines commit or roll back together.
type BookingStore interface {
	Transaction(ctx context.Context, fn func(BookingStore) error) error

	List(ctx context.Context, f BookingFilter) ([]domain.Booking, int64, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error)
	GetByID(ctx context.Context, id uint) (*domain.Booking, error)
	GetByIDInStatuses(ctx context.Context, id uint, statuses []domain.BookingStatus) (*domain.Booking, error)

	Create(ctx context.Context, b *domain.Booking) error
	Save(ctx context.Context, b *domain.Booking) error
	Transition(ctx context.Context, id uint, from []domain.BookingStatus, to domain.BookingStatus, at time.Time) (bool, error)
	SoftDelete(ctx context.Context, id uint) error

	OccupiedRoomIDs(ctx context.Context, checkin, checkout time.Time, excludeBookingID uint) ([]uint, error)
	CountOverlapping(ctx context.Context, roomID uint, checkin, checkout time.Time, excludeBookingID uint, lock bool) (int64, error)

	DeleteDetails(ctx context.Context, bookingID uint, ids []uint) error
	UpsertDetails(ctx context.Context, details []domain.BookingDetail) error
	CheckedInDetailExists(ctx context.Context, bookingID uint, ids []uint) (bool, error)
	MarkDetailsCheckedIn(ctx context.Context, bookingID uint, ids []uint, at time.Time) error
	HasDetailsNotCheckedIn(ctx context.Context, bookingID uint) (bool, error)

	ServiceCharge(ctx context.Context, bookingID uint) (domain.Money, error)
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

var _ BookingStore = (*BookingRepository)(nil)

func (r *BookingRepository) Transaction(ctx context.Context, fn func(BookingStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingRepository{db: tx})
	})
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{})

	if f.GuestName != "" {
		q = q.Where("guest_name LIKE ?", like(f.GuestName))
	}
	if f.GuestEmail != "" {
		q = q.Where("guest_email LIKE ?", like(f.GuestEmail))
	}
	if f.GuestPhone != "" {
		q = q.Where("guest_phone LIKE ?", like(f.GuestPhone))
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at DESC").Preload("Details").Preload("Details.Room")

	if f.PerPage != -1 {
		perPage := f.PerPage
		if perPage <= 0 {
			perPage = 15
		}
		page := f.Page
		if page <= 0 {
			page = 1
		}
		q = q.Limit(perPage).Offset((page - 1) * perPage)
	}

	var bookings []domain.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Details").
		Preload("Details.Room").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByID(ctx context.Context, id uint) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Details").
		Preload("Details.Room").
		Preload("Details.Room.RoomType").
		Preload("User").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByIDInStatuses(ctx context.Context, id uint, statuses []domain.BookingStatus) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Preload("Details").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return translateOverlap(err)
	}
	return nil
}

// Save persists the booking header only; detail rows are written through
// DeleteDetails/UpsertDetails so the reconcile step stays explicit.
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

// Transition moves a booking from one of the given statuses to the
// target in a single guarded UPDATE. Returns false when the booking does
// not exist in any of the source statuses.
func (r *BookingRepository) Transition(ctx context.Context, id uint, from []domain.BookingStatus, to domain.BookingStatus, at time.Time) (bool, error) {
	updates := map[string]any{"status": to, "updated_at": at}
	switch to {
	case domain.BookingCheckIn:
		updates["check_in"] = at
	case domain.BookingCheckOut:
		updates["check_out"] = at
	case domain.BookingPending, domain.BookingConfirmed, domain.BookingCancelled,
		domain.BookingNoShow, domain.BookingExpired:
	}

	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *BookingRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Booking{}, id).Error
}

// OccupiedRoomIDs returns the rooms held by a live booking whose range
// overlaps [checkin, checkout). Half-open semantics: rows touching the
// boundary do not count.
func (r *BookingRepository) OccupiedRoomIDs(ctx context.Context, checkin, checkout time.Time, excludeBookingID uint) ([]uint, error) {
	q := r.overlapQuery(ctx, checkin, checkout, excludeBookingID)

	var ids []uint
	if err := q.Distinct("booking_details.room_id").Pluck("booking_details.room_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// CountOverlapping counts live booking lines for one room that overlap
// the candidate range. With lock it takes FOR UPDATE row locks on the
// matched lines so the check stays valid until the enclosing
// transaction commits.
func (r *BookingRepository) CountOverlapping(ctx context.Context, roomID uint, checkin, checkout time.Time, excludeBookingID uint, lock bool) (int64, error) {
	q := r.overlapQuery(ctx, checkin, checkout, excludeBookingID).
		Where("booking_details.room_id = ?", roomID)

	// FOR UPDATE cannot be combined with COUNT, so fetch the matched ids.
	if lock && r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{
			Strength: "UPDATE",
			Table:    clause.Table{Name: "booking_details"},
		})
	}

	var ids []uint
	if err := q.Pluck("booking_details.id", &ids).Error; err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (r *BookingRepository) overlapQuery(ctx context.Context, checkin, checkout time.Time, excludeBookingID uint) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&domain.BookingDetail{}).
		Joins("JOIN bookings ON bookings.id = booking_details.booking_id AND bookings.deleted_at IS NULL").
		Where("bookings.status IN ?", domain.LiveBookingStatuses()).
		Where("booking_details.checkin_at < ? AND booking_details.checkout_at > ?", checkout, checkin)

	if excludeBookingID != 0 {
		q = q.Where("booking_details.booking_id <> ?", excludeBookingID)
	}
	return q
}

func (r *BookingRepository) DeleteDetails(ctx context.Context, bookingID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("booking_id = ? AND id IN ?", bookingID, ids).
		Delete(&domain.BookingDetail{}).Error
}

func (r *BookingRepository) UpsertDetails(ctx context.Context, details []domain.BookingDetail) error {
	for i := range details {
		d := &details[i]
		var err error
		if d.ID == 0 {
			err = r.db.WithContext(ctx).Create(d).Error
		} else {
			err = r.db.WithContext(ctx).Save(d).Error
		}
		if err != nil {
			return translateOverlap(err)
		}
	}
	return nil
}

func (r *BookingRepository) CheckedInDetailExists(ctx context.Context, bookingID uint, ids []uint) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.BookingDetail{}).
		Where("booking_id = ? AND id IN ? AND status = ?", bookingID, ids, domain.DetailCheckIn).
		Count(&count).Error
	return count > 0, err
}

func (r *BookingRepository) MarkDetailsCheckedIn(ctx context.Context, bookingID uint, ids []uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.BookingDetail{}).
		Where("booking_id = ? AND id IN ?", bookingID, ids).
		Updates(map[string]any{
			"status":        domain.DetailCheckIn,
			"checked_in_at": at,
		}).Error
}

func (r *BookingRepository) HasDetailsNotCheckedIn(ctx context.Context, bookingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.BookingDetail{}).
		Where("booking_id = ? AND status <> ?", bookingID, domain.DetailCheckIn).
		Count(&count).Error
	return count > 0, err
}

// ServiceCharge sums price*quantity over the booking's non-deleted
// service lines. No lines means zero, not an error.
func (r *BookingRepository) ServiceCharge(ctx context.Context, bookingID uint) (domain.Money, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.InvoiceDetail{}).
		Where("booking_id = ?", bookingID).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&total).Error
	return domain.Money(total), err
}

func translateOverlap(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		(pgErr.Code == "23P01" || pgErr.Code == "23505") &&
		pgErr.ConstraintName == overlapConstraint {
		return ErrOverlap
	}
	return err
}

func like(s string) string {
	return "%" + strings.ReplaceAll(s, "%", "\\%") + "%"
}
