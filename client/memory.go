package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"shivashray-backend/models"
	"shivashray-backend/services"
)

// MemoryGateway serves the same fixture catalog the backend seeds, entirely
// in process. It exists so the booking workflow can run end-to-end without
// a server, with the same error bodies a real backend would produce.
type MemoryGateway struct {
	mu       sync.Mutex
	rooms    []Room
	bookings map[uint]*Booking
	byKey    map[string]uint
	nextID   uint
}

func NewMemoryGateway() *MemoryGateway {
	deluxe := RoomType{
		ID: 1, Name: "Deluxe Room",
		Description:  "Spacious room with a city view",
		MaxOccupancy: 3, BaseOccupancy: 2,
		BasePrice: 4000, ExtraAdultPrice: f64(1500), ChildPrice: f64(1200),
	}
	superDeluxe := RoomType{
		ID: 2, Name: "Super Deluxe Room",
		Description:  "Premium room with a balcony",
		MaxOccupancy: 3, BaseOccupancy: 2,
		BasePrice: 6000, ExtraAdultPrice: f64(2100), ChildPrice: f64(1500),
	}
	family := RoomType{
		ID: 3, Name: "Family Room",
		Description:  "Two connected rooms for larger groups",
		MaxOccupancy: 6, BaseOccupancy: 4,
		BasePrice: 6500, ExtraAdultPrice: f64(2275), ChildPrice: f64(1625),
	}

	g := &MemoryGateway{
		bookings: make(map[uint]*Booking),
		byKey:    make(map[string]uint),
		nextID:   1,
	}
	add := func(id uint, number string, floor int, rt RoomType) {
		g.rooms = append(g.rooms, Room{
			ID: id, RoomNumber: number, RoomTypeID: rt.ID,
			Floor: &floor, IsActive: true, RoomType: rt,
		})
	}
	add(1, "101", 1, deluxe)
	add(2, "102", 1, deluxe)
	add(3, "201", 2, superDeluxe)
	add(4, "202", 2, superDeluxe)
	add(5, "301", 3, family)
	add(6, "302", 3, family)
	return g
}

func f64(v float64) *float64 { return &v }

func (g *MemoryGateway) ListRooms(ctx context.Context) ([]Room, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Room, len(g.rooms))
	copy(out, g.rooms)
	return out, nil
}

func (g *MemoryGateway) GetRoom(ctx context.Context, roomID uint) (*Room, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room := g.findRoom(roomID)
	if room == nil {
		return nil, apiError(http.StatusNotFound, "Room not found")
	}
	out := *room
	return &out, nil
}

func (g *MemoryGateway) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut string) (bool, error) {
	in, err := parseStayDate(checkIn)
	if err != nil {
		return false, apiError(http.StatusBadRequest, "Invalid check-in date")
	}
	out, err := parseStayDate(checkOut)
	if err != nil {
		return false, apiError(http.StatusBadRequest, "Invalid check-out date")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.findRoom(roomID) == nil {
		return false, apiError(http.StatusNotFound, "Room not found")
	}
	return !g.hasConflict(roomID, in, out), nil
}

func (g *MemoryGateway) CreateBooking(ctx context.Context, req StayRequest) (*Booking, error) {
	in, err := parseStayDate(req.CheckInDate)
	if err != nil {
		return nil, apiError(http.StatusBadRequest, "Invalid check-in date")
	}
	out, err := parseStayDate(req.CheckOutDate)
	if err != nil {
		return nil, apiError(http.StatusBadRequest, "Invalid check-out date")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if req.IdempotencyKey != "" {
		if id, ok := g.byKey[req.IdempotencyKey]; ok {
			existing := *g.bookings[id]
			return &existing, nil
		}
	}

	room := g.findRoom(req.RoomID)
	if room == nil {
		return nil, apiError(http.StatusNotFound, "Room not found")
	}

	rt := models.RoomType{
		Name:            room.RoomType.Name,
		MaxOccupancy:    room.RoomType.MaxOccupancy,
		BaseOccupancy:   room.RoomType.BaseOccupancy,
		BasePrice:       room.RoomType.BasePrice,
		ExtraAdultPrice: room.RoomType.ExtraAdultPrice,
		ChildPrice:      room.RoomType.ChildPrice,
	}
	guests, adults, children := services.ResolveGuests(req.NumberOfGuests, req.NumberOfAdults, req.NumberOfChildren)
	if guests > rt.MaxOccupancy {
		return nil, apiError(http.StatusBadRequest, "Number of guests exceeds the room's maximum occupancy")
	}
	quote, err := services.QuoteStay(rt, in, out, adults, children)
	if err != nil {
		return nil, apiError(http.StatusBadRequest, "Check-out date must be after check-in date")
	}

	if g.hasConflict(req.RoomID, in, out) {
		return nil, apiError(http.StatusBadRequest, "Room is not available for the selected dates")
	}

	roomCopy := *room
	booking := &Booking{
		ID:               g.nextID,
		RoomID:           req.RoomID,
		CheckInDate:      in,
		CheckOutDate:     out,
		Nights:           quote.Nights,
		NumberOfGuests:   guests,
		NumberOfAdults:   &adults,
		NumberOfChildren: &children,
		TotalAmount:      quote.TotalAmount,
		Status:           models.BookingPending,
		PaymentStatus:    models.PaymentPending,
		GuestName:        req.GuestName,
		GuestEmail:       req.GuestEmail,
		GuestPhone:       req.GuestPhone,
		SpecialRequests:  req.SpecialRequests,
		Room:             &roomCopy,
	}
	g.nextID++
	g.bookings[booking.ID] = booking
	if req.IdempotencyKey != "" {
		g.byKey[req.IdempotencyKey] = booking.ID
	}

	result := *booking
	return &result, nil
}

func (g *MemoryGateway) GetBooking(ctx context.Context, bookingID uint) (*Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	booking, ok := g.bookings[bookingID]
	if !ok {
		return nil, apiError(http.StatusNotFound, "Booking not found")
	}
	out := *booking
	return &out, nil
}

func (g *MemoryGateway) UpdateBooking(ctx context.Context, bookingID uint, upd BookingUpdate) (*Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	booking, ok := g.bookings[bookingID]
	if !ok {
		return nil, apiError(http.StatusNotFound, "Booking not found")
	}
	if upd.Status != nil {
		if !services.CanTransitionBooking(booking.Status, *upd.Status) {
			return nil, apiError(http.StatusConflict, "Invalid booking status transition")
		}
		booking.Status = *upd.Status
	}
	if upd.PaymentStatus != nil {
		if !services.CanTransitionPayment(booking.PaymentStatus, *upd.PaymentStatus) {
			return nil, apiError(http.StatusConflict, "Invalid payment status transition")
		}
		booking.PaymentStatus = *upd.PaymentStatus
	}
	if upd.SpecialRequests != nil {
		booking.SpecialRequests = *upd.SpecialRequests
	}
	out := *booking
	return &out, nil
}

func (g *MemoryGateway) CancelBooking(ctx context.Context, bookingID uint) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	booking, ok := g.bookings[bookingID]
	if !ok {
		return apiError(http.StatusNotFound, "Booking not found")
	}
	if !services.CanTransitionBooking(booking.Status, models.BookingCancelled) {
		return apiError(http.StatusConflict, "Booking can no longer be cancelled")
	}
	booking.Status = models.BookingCancelled
	return nil
}

func (g *MemoryGateway) findRoom(roomID uint) *Room {
	for i := range g.rooms {
		if g.rooms[i].ID == roomID {
			return &g.rooms[i]
		}
	}
	return nil
}

// hasConflict reports whether any live booking overlaps [in, out) on the room.
func (g *MemoryGateway) hasConflict(roomID uint, in, out time.Time) bool {
	for _, b := range g.bookings {
		if b.RoomID != roomID {
			continue
		}
		if b.Status != models.BookingConfirmed && b.Status != models.BookingCheckedIn {
			continue
		}
		if b.CheckInDate.Before(out) && b.CheckOutDate.After(in) {
			return true
		}
	}
	return false
}

func apiError(status int, detail string) *APIError {
	raw, _ := json.Marshal(detail)
	return &APIError{StatusCode: status, Detail: raw}
}
