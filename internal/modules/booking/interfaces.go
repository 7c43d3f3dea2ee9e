package booking

import (
	"context"

	"hotelier/internal/domain"
)

// RoomRepository is the read-only slice of the room catalog the booking
// engine needs: room existence and the room type rate to snapshot.
type RoomRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.Room, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]domain.Room, error)
	ListAvailable(ctx context.Context, roomTypeID uint, excludeIDs []uint) ([]domain.Room, error)
}
