package domain

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleGuest UserRole = "guest"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255"`
	Phone        string         `json:"phone"`
	PasswordHash string         `json:"-"`
	Role         UserRole       `json:"role" gorm:"size:20"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
