package models

import "time"

// HotelService is a catalog entry for the marketing/services page
// (restaurant, spa, airport transfer, ...).
type HotelService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"uniqueIndex;size:255" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Icon        string `gorm:"size:64" json:"icon,omitempty"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

func (HotelService) TableName() string { return "services" }
