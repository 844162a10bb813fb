package client

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryGatewayCatalog(t *testing.T) {
	g := NewMemoryGateway()

	rooms, err := g.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("ListRooms() error = %v", err)
	}
	if len(rooms) != 6 {
		t.Fatalf("len(rooms) = %d, want 6", len(rooms))
	}

	room, err := g.GetRoom(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetRoom(1) error = %v", err)
	}
	if room.RoomNumber != "101" || room.RoomType.Name != "Deluxe Room" {
		t.Errorf("room 1 = %s (%s)", room.RoomNumber, room.RoomType.Name)
	}

	if _, err := g.GetRoom(context.Background(), 99); err == nil {
		t.Error("GetRoom(99) returned no error")
	}
}

func TestWorkflowAgainstMemoryGateway(t *testing.T) {
	g := NewMemoryGateway()
	w := &Workflow{Gateway: g}
	adults, children := 2, 1

	booking, err := w.Submit(context.Background(), StayRequest{
		RoomID:           1,
		CheckInDate:      "2026-03-10",
		CheckOutDate:     "2026-03-12",
		NumberOfAdults:   &adults,
		NumberOfChildren: &children,
		GuestName:        "Asha Verma",
		GuestEmail:       "asha@example.com",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if booking.Status != "pending" || booking.PaymentStatus != "pending" {
		t.Errorf("new booking = %s/%s, want pending/pending", booking.Status, booking.PaymentStatus)
	}
	if booking.Nights != 2 {
		t.Errorf("Nights = %d, want 2", booking.Nights)
	}
	// 2 nights at 4000 base plus one child at 1200 a night.
	if booking.TotalAmount != 10400 {
		t.Errorf("TotalAmount = %v, want 10400", booking.TotalAmount)
	}
	if booking.NumberOfGuests != 3 {
		t.Errorf("NumberOfGuests = %d, want 3", booking.NumberOfGuests)
	}

	// A pending booking does not hold the room yet.
	second, err := w.Submit(context.Background(), StayRequest{
		RoomID:         1,
		CheckInDate:    "2026-03-11",
		CheckOutDate:   "2026-03-13",
		NumberOfGuests: 2,
		GuestName:      "Ravi Kumar",
		GuestEmail:     "ravi@example.com",
	})
	if err != nil {
		t.Fatalf("Submit() while first is pending error = %v", err)
	}
	if second.ID == booking.ID {
		t.Error("second booking reused the first booking's id")
	}

	// Once confirmed, the first booking blocks overlapping stays.
	confirmed := "confirmed"
	if _, err := g.UpdateBooking(context.Background(), booking.ID, BookingUpdate{Status: &confirmed}); err != nil {
		t.Fatalf("UpdateBooking() error = %v", err)
	}
	_, err = w.Submit(context.Background(), StayRequest{
		RoomID:         1,
		CheckInDate:    "2026-03-11",
		CheckOutDate:   "2026-03-13",
		NumberOfGuests: 2,
		GuestName:      "Meera Joshi",
		GuestEmail:     "meera@example.com",
	})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("overlapping Submit() error = %v, want ErrUnavailable", err)
	}

	// A different room of the same type is still free.
	if _, err := w.Submit(context.Background(), StayRequest{
		RoomID:         2,
		CheckInDate:    "2026-03-11",
		CheckOutDate:   "2026-03-13",
		NumberOfGuests: 2,
		GuestName:      "Meera Joshi",
		GuestEmail:     "meera@example.com",
	}); err != nil {
		t.Fatalf("Submit() on room 2 error = %v", err)
	}
}

func TestMemoryGatewayIdempotentReplay(t *testing.T) {
	g := NewMemoryGateway()
	req := StayRequest{
		RoomID:         1,
		CheckInDate:    "2026-03-10",
		CheckOutDate:   "2026-03-12",
		NumberOfGuests: 2,
		GuestName:      "Asha Verma",
		GuestEmail:     "asha@example.com",
		IdempotencyKey: "attempt-1",
	}

	first, err := g.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("first CreateBooking() error = %v", err)
	}
	second, err := g.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("replayed CreateBooking() error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("replay created booking %d, want %d", second.ID, first.ID)
	}
}

func TestMemoryGatewayRejectsOverOccupancy(t *testing.T) {
	g := NewMemoryGateway()
	adults := 4

	_, err := g.CreateBooking(context.Background(), StayRequest{
		RoomID:         1,
		CheckInDate:    "2026-03-10",
		CheckOutDate:   "2026-03-12",
		NumberOfAdults: &adults,
		GuestName:      "Asha Verma",
		GuestEmail:     "asha@example.com",
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 400 {
		t.Fatalf("error = %v, want 400 *APIError", err)
	}
}

func TestMemoryGatewayStatusTransitions(t *testing.T) {
	g := NewMemoryGateway()
	booking, err := g.CreateBooking(context.Background(), StayRequest{
		RoomID:         1,
		CheckInDate:    "2026-03-10",
		CheckOutDate:   "2026-03-12",
		NumberOfGuests: 2,
		GuestName:      "Asha Verma",
		GuestEmail:     "asha@example.com",
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	// A new booking starts pending and cannot jump straight to checked_in.
	checkedIn := "checked_in"
	if _, err := g.UpdateBooking(context.Background(), booking.ID, BookingUpdate{Status: &checkedIn}); err == nil {
		t.Error("UpdateBooking allowed pending -> checked_in")
	}

	confirmed := "confirmed"
	if _, err := g.UpdateBooking(context.Background(), booking.ID, BookingUpdate{Status: &confirmed}); err != nil {
		t.Fatalf("confirm error = %v", err)
	}

	paid := "paid"
	updated, err := g.UpdateBooking(context.Background(), booking.ID, BookingUpdate{
		Status:        &checkedIn,
		PaymentStatus: &paid,
	})
	if err != nil {
		t.Fatalf("UpdateBooking() error = %v", err)
	}
	if updated.Status != "checked_in" || updated.PaymentStatus != "paid" {
		t.Errorf("updated = %s/%s", updated.Status, updated.PaymentStatus)
	}

	pending := "pending"
	if _, err := g.UpdateBooking(context.Background(), booking.ID, BookingUpdate{Status: &pending}); err == nil {
		t.Error("UpdateBooking allowed checked_in -> pending")
	}

	checkedOut := "checked_out"
	if _, err := g.UpdateBooking(context.Background(), booking.ID, BookingUpdate{Status: &checkedOut}); err != nil {
		t.Fatalf("checkout error = %v", err)
	}
	if err := g.CancelBooking(context.Background(), booking.ID); err == nil {
		t.Error("CancelBooking allowed cancelling a checked-out stay")
	}
}
