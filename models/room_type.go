package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is the rate card for a class of rooms. BasePrice covers
// BaseOccupancy guests per night; extra adults and children are billed per
// night on top of it when the surcharge columns are set.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"uniqueIndex;size:255" json:"name"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	MaxOccupancy int    `gorm:"column:max_occupancy;default:2" json:"max_occupancy"`

	// BaseOccupancy 0 means "not set": pricing falls back to the legacy
	// name rule (see services.BaseOccupancy).
	BaseOccupancy int `gorm:"column:base_occupancy;default:0" json:"base_occupancy,omitempty"`

	BasePrice       float64  `gorm:"column:base_price" json:"base_price"`
	ExtraAdultPrice *float64 `gorm:"column:extra_adult_price" json:"extra_adult_price,omitempty"`
	ChildPrice      *float64 `gorm:"column:child_price" json:"child_price,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
