package domain

import (
	"time"

	"gorm.io/gorm"
)

type RoomStatus int

const (
	RoomActive RoomStatus = iota + 1
	RoomBooked
	RoomOccupied
	RoomCleaning
	RoomInactive
)

func (s RoomStatus) String() string {
	switch s {
	case RoomActive:
		return "active"
	case RoomBooked:
		return "booked"
	case RoomOccupied:
		return "occupied"
	case RoomCleaning:
		return "cleaning"
	case RoomInactive:
		return "inactive"
	}
	return "unknown"
}

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomActive, RoomBooked, RoomOccupied, RoomCleaning, RoomInactive:
		return true
	}
	return false
}

type Room struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"uniqueIndex;size:100"`
	RoomTypeID    uint           `json:"room_type_id" gorm:"index"`
	RoomType      *RoomType      `json:"room_type,omitempty" gorm:"foreignKey:RoomTypeID"`
	ThumbnailPath string         `json:"thumbnail_path"`
	Description   string         `json:"description" gorm:"type:text"`
	Status        RoomStatus     `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// RoomType carries the per-time-unit rate the booking engine snapshots
// onto each booking line.
type RoomType struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"uniqueIndex;size:100"`
	Price      Money          `json:"price"`
	Properties []RoomProperty `json:"properties,omitempty" gorm:"foreignKey:RoomTypeID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// Property is an amenity that room types can carry with a value, e.g.
// "beds" = "2" or "wifi" = "yes".
type Property struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomProperty struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RoomTypeID uint      `json:"room_type_id" gorm:"index"`
	PropertyID uint      `json:"property_id" gorm:"index"`
	Property   *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Value      string    `json:"value"`
}
