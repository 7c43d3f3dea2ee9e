package auth

import (
	"context"

	"hotelier/internal/domain"
)

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, search string, page, perPage int) ([]domain.User, int64, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
}

type jwtService interface {
	GenerateToken(userID uint, role string) (string, error)
}
