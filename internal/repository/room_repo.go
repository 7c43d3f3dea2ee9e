package repository

import (
	"context"

	"hotelier/internal/domain"

	"gorm.io/gorm"
)

type RoomFilter struct {
	Name       string
	RoomTypeID uint
	Status     *domain.RoomStatus
	Page       int
	PerPage    int
}

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, id uint) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).Preload("RoomType").First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByIDs loads rooms with their room types keyed by id, for price
// snapshotting during booking create/update.
func (r *RoomRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).Preload("RoomType").Where("id IN ?", ids).Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uint]domain.Room, len(rooms))
	for _, room := range rooms {
		out[room.ID] = room
	}
	return out, nil
}

// ListAvailable returns rooms not in excludeIDs. With a room type it
// narrows to active rooms of that type; without one it returns all rooms.
func (r *RoomRepository) ListAvailable(ctx context.Context, roomTypeID uint, excludeIDs []uint) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Preload("RoomType")
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	if roomTypeID != 0 {
		q = q.Where("room_type_id = ? AND status = ?", roomTypeID, domain.RoomActive)
	}

	var rooms []domain.Room
	if err := q.Order("name").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) Search(ctx context.Context, f RoomFilter) ([]domain.Room, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Room{})

	if f.Name != "" {
		q = q.Where("name LIKE ?", like(f.Name))
	}
	if f.RoomTypeID != 0 {
		q = q.Where("room_type_id = ?", f.RoomTypeID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	perPage := f.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}

	var rooms []domain.Room
	err := q.Preload("RoomType").
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&rooms).Error
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Room{}, id).Error
}

func (r *RoomRepository) Restore(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Model(&domain.Room{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}
