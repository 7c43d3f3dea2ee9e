package catalog

import (
	"context"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

// The catalog repositories are consumed through narrow interfaces so the
// service can be wired to the gorm repositories or to test doubles.

type RoomRepo interface {
	GetByID(ctx context.Context, id uint) (*domain.Room, error)
	Search(ctx context.Context, f repository.RoomFilter) ([]domain.Room, int64, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
}

type RoomTypeRepo interface {
	List(ctx context.Context, name string, page, perPage int) ([]domain.RoomType, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.RoomType, error)
	Create(ctx context.Context, rt *domain.RoomType) error
	Update(ctx context.Context, rt *domain.RoomType) error
	SoftDelete(ctx context.Context, id uint) error
}

type PropertyRepo interface {
	List(ctx context.Context, name string) ([]domain.Property, error)
	GetByID(ctx context.Context, id uint) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) error
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id uint) error
}

type ServiceRepo interface {
	List(ctx context.Context, name string, page, perPage int) ([]domain.HotelService, int64, error)
	GetByID(ctx context.Context, id uint) (*domain.HotelService, error)
	Create(ctx context.Context, svc *domain.HotelService) error
	Update(ctx context.Context, svc *domain.HotelService) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
}
