package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email          string `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	HashedPassword string `gorm:"column:hashed_password;not null" json:"-"`
	FullName       string `gorm:"column:full_name;size:255" json:"full_name"`
	Phone          string `gorm:"column:phone;size:32" json:"phone,omitempty"`
	IsActive       bool   `gorm:"column:is_active;default:true" json:"is_active"`
	Role           string `gorm:"column:role;size:16;default:guest" json:"role"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
