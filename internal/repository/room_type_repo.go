package repository

import (
	"context"

	"hotelier/internal/domain"

	"gorm.io/gorm"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) List(ctx context.Context, name string, page, perPage int) ([]domain.RoomType, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.RoomType{})
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

	var types []domain.RoomType
	err := q.Preload("Properties").
		Preload("Properties.Property").
		Order("name").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&types).Error
	if err != nil {
		return nil, 0, err
	}
	return types, total, nil
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id uint) (*domain.RoomType, error) {
	var rt domain.RoomType
	err := r.db.WithContext(ctx).
		Preload("Properties").
		Preload("Properties.Property").
		First(&rt, id).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

// Update replaces the room type's property set wholesale along with its
// scalar fields.
func (r *RoomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_type_id = ?", rt.ID).Delete(&domain.RoomProperty{}).Error; err != nil {
			return err
		}
		return tx.Save(rt).Error
	})
}

func (r *RoomTypeRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.RoomType{}, id).Error
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) List(ctx context.Context, name string) ([]domain.Property, error) {
	q := r.db.WithContext(ctx)
	if name != "" {
		q = q.Where("name LIKE ?", like(name))
	}
	var props []domain.Property
	err := q.Order("name").Find(&props).Error
	return props, err
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uint) (*domain.Property, error) {
	var p domain.Property
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Property{}, id).Error
}
