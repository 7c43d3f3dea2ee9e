package repository

import (
	"context"

	"hotelier/internal/domain"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) ListByBooking(ctx context.Context, bookingID uint) ([]domain.InvoiceDetail, error) {
	var details []domain.InvoiceDetail
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("id").
		Find(&details).Error
	return details, err
}

// Upsert writes the given service lines in one transaction: lines with
// an id update in place, lines without insert.
func (r *InvoiceRepository) Upsert(ctx context.Context, details []domain.InvoiceDetail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range details {
			d := &details[i]
			var err error
			if d.ID == 0 {
				err = tx.Create(d).Error
			} else {
				err = tx.Save(d).Error
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *InvoiceRepository) Delete(ctx context.Context, bookingID, id uint) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Delete(&domain.InvoiceDetail{}, id)
	return tx.RowsAffected > 0, tx.Error
}

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) List(ctx context.Context, name string, page, perPage int) ([]domain.HotelService, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.HotelService{})
	if name != "" {
		q = q.Where("name LIKE ?", like(name))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if perPage <= 0 {
		perPage = 10
	}
	if page <= 0 {
		page = 1
	}

	var services []domain.HotelService
	err := q.Order("name").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uint) (*domain.HotelService, error) {
	var s domain.HotelService
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.HotelService) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.HotelService) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.HotelService{}, id).Error
}

func (r *ServiceRepository) Restore(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Model(&domain.HotelService{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}
