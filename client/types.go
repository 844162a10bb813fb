package client

import "time"

// Wire types for the booking API. Dates travel as "YYYY-MM-DDTHH:mm:ss"
// strings; a bare "YYYY-MM-DD" is coerced by appending T00:00:00 before it
// leaves the client.

type RoomType struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	MaxOccupancy    int      `json:"max_occupancy"`
	BaseOccupancy   int      `json:"base_occupancy,omitempty"`
	BasePrice       float64  `json:"base_price"`
	ExtraAdultPrice *float64 `json:"extra_adult_price,omitempty"`
	ChildPrice      *float64 `json:"child_price,omitempty"`
}

type Room struct {
	ID          uint     `json:"id"`
	RoomNumber  string   `json:"room_number"`
	RoomTypeID  uint     `json:"room_type_id"`
	Floor       *int     `json:"floor,omitempty"`
	IsActive    bool     `json:"is_active"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
	RoomType    RoomType `json:"room_type"`
}

// StayRequest is one booking form submission.
type StayRequest struct {
	RoomID           uint   `json:"room_id"`
	CheckInDate      string `json:"check_in_date"`
	CheckOutDate     string `json:"check_out_date"`
	NumberOfGuests   int    `json:"number_of_guests"`
	NumberOfAdults   *int   `json:"number_of_adults,omitempty"`
	NumberOfChildren *int   `json:"number_of_children,omitempty"`
	GuestName        string `json:"guest_name"`
	GuestEmail       string `json:"guest_email"`
	GuestPhone       string `json:"guest_phone,omitempty"`
	SpecialRequests  string `json:"special_requests,omitempty"`
	IdempotencyKey   string `json:"idempotency_key,omitempty"`
}

type Booking struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id,omitempty"`
	RoomID           uint      `json:"room_id"`
	CheckInDate      time.Time `json:"check_in_date"`
	CheckOutDate     time.Time `json:"check_out_date"`
	Nights           int       `json:"nights"`
	NumberOfGuests   int       `json:"number_of_guests"`
	NumberOfAdults   *int      `json:"number_of_adults,omitempty"`
	NumberOfChildren *int      `json:"number_of_children,omitempty"`
	TotalAmount      float64   `json:"total_amount"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	GuestName        string    `json:"guest_name"`
	GuestEmail       string    `json:"guest_email"`
	GuestPhone       string    `json:"guest_phone,omitempty"`
	SpecialRequests  string    `json:"special_requests,omitempty"`
	Room             *Room     `json:"room,omitempty"`
}

// BookingUpdate is the staff PATCH payload; nil fields are left untouched.
type BookingUpdate struct {
	Status          *string `json:"status,omitempty"`
	PaymentStatus   *string `json:"payment_status,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type AvailabilityResponse struct {
	RoomID    uint   `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
