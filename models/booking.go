package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. Transitions are validated in services (see
// services.CanTransitionBooking); the columns store plain strings.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingCheckedIn  = "checked_in"
	BookingCheckedOut = "checked_out"
	BookingCancelled  = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;column:user_id" json:"user_id"`
	RoomID uint `gorm:"index;column:room_id" json:"room_id"`

	CheckInDate  time.Time `gorm:"column:check_in_date;index" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date;index" json:"check_out_date"`
	Nights       int       `gorm:"column:nights" json:"nights"`

	NumberOfGuests   int  `gorm:"column:number_of_guests;default:1" json:"number_of_guests"`
	NumberOfAdults   *int `gorm:"column:number_of_adults" json:"number_of_adults,omitempty"`
	NumberOfChildren *int `gorm:"column:number_of_children" json:"number_of_children,omitempty"`

	TotalAmount   float64 `gorm:"column:total_amount" json:"total_amount"`
	Status        string  `gorm:"column:status;size:32;index;default:pending" json:"status"`
	PaymentStatus string  `gorm:"column:payment_status;size:32;default:pending" json:"payment_status"`

	GuestName       string `gorm:"column:guest_name" json:"guest_name"`
	GuestEmail      string `gorm:"column:guest_email" json:"guest_email"`
	GuestPhone      string `gorm:"column:guest_phone" json:"guest_phone,omitempty"`
	SpecialRequests string `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`

	// Client-generated key; replays of the same submission return the
	// original booking instead of creating a duplicate.
	IdempotencyKey *string `gorm:"column:idempotency_key;uniqueIndex;size:64" json:"idempotency_key,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
