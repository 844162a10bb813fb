package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	RoomNumber string `json:"room_number" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomTypeID uint   `json:"room_type_id" gorm:"column:room_type_id;index"`

	Floor       *int   `json:"floor,omitempty" gorm:"column:floor"`
	IsActive    bool   `json:"is_active" gorm:"column:is_active;default:true"`
	Description string `json:"description,omitempty" gorm:"type:text"`

	// JSON arrays of strings (amenity names, image URLs).
	Amenities datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`
	ImageURLs datatypes.JSON `json:"image_urls,omitempty" gorm:"column:image_urls"`

	RoomType RoomType `json:"room_type" gorm:"foreignKey:RoomTypeID"`
}
