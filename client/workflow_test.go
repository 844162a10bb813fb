package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

// mockGateway lets each test stub just the calls it expects.
type mockGateway struct {
	checkAvailability func(roomID uint, checkIn, checkOut string) (bool, error)
	createBooking     func(req StayRequest) (*Booking, error)
	cancelBooking     func(bookingID uint) error
}

func (m *mockGateway) ListRooms(ctx context.Context) ([]Room, error)       { return nil, nil }
func (m *mockGateway) GetRoom(ctx context.Context, id uint) (*Room, error) { return nil, nil }

func (m *mockGateway) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut string) (bool, error) {
	return m.checkAvailability(roomID, checkIn, checkOut)
}

func (m *mockGateway) CreateBooking(ctx context.Context, req StayRequest) (*Booking, error) {
	return m.createBooking(req)
}

func (m *mockGateway) GetBooking(ctx context.Context, id uint) (*Booking, error) {
	return nil, nil
}

func (m *mockGateway) UpdateBooking(ctx context.Context, id uint, upd BookingUpdate) (*Booking, error) {
	return nil, nil
}

func (m *mockGateway) CancelBooking(ctx context.Context, id uint) error {
	return m.cancelBooking(id)
}

func stayRequest() StayRequest {
	return StayRequest{
		RoomID:         1,
		CheckInDate:    "2026-03-10",
		CheckOutDate:   "2026-03-12",
		NumberOfGuests: 2,
		GuestName:      "Asha Verma",
		GuestEmail:     "asha@example.com",
	}
}

func TestSubmitChecksAvailabilityFirst(t *testing.T) {
	created := 0
	gw := &mockGateway{
		checkAvailability: func(roomID uint, checkIn, checkOut string) (bool, error) {
			return false, nil
		},
		createBooking: func(req StayRequest) (*Booking, error) {
			created++
			return &Booking{ID: 1}, nil
		},
	}
	w := &Workflow{Gateway: gw}

	_, err := w.Submit(context.Background(), stayRequest())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Submit() error = %v, want ErrUnavailable", err)
	}
	if created != 0 {
		t.Errorf("CreateBooking called %d times for an unavailable room", created)
	}
}

func TestSubmitCreatesWhenAvailable(t *testing.T) {
	created := 0
	var gotKey string
	gw := &mockGateway{
		checkAvailability: func(roomID uint, checkIn, checkOut string) (bool, error) {
			return true, nil
		},
		createBooking: func(req StayRequest) (*Booking, error) {
			created++
			gotKey = req.IdempotencyKey
			return &Booking{ID: 7, RoomID: req.RoomID, Status: "confirmed"}, nil
		},
	}
	w := &Workflow{Gateway: gw}

	booking, err := w.Submit(context.Background(), stayRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if booking.ID != 7 {
		t.Errorf("booking.ID = %d, want 7", booking.ID)
	}
	if created != 1 {
		t.Errorf("CreateBooking called %d times, want 1", created)
	}
	if gotKey == "" {
		t.Error("Submit sent an empty idempotency key")
	}
}

func TestSubmitKeepsPresetIdempotencyKey(t *testing.T) {
	var gotKey string
	gw := &mockGateway{
		checkAvailability: func(roomID uint, checkIn, checkOut string) (bool, error) {
			return true, nil
		},
		createBooking: func(req StayRequest) (*Booking, error) {
			gotKey = req.IdempotencyKey
			return &Booking{ID: 1}, nil
		},
	}
	w := &Workflow{Gateway: gw}

	req := stayRequest()
	req.IdempotencyKey = "retry-key-1"
	if _, err := w.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if gotKey != "retry-key-1" {
		t.Errorf("idempotency key = %q, want %q", gotKey, "retry-key-1")
	}
}

func TestSubmitRejectsBadDates(t *testing.T) {
	gw := &mockGateway{
		checkAvailability: func(roomID uint, checkIn, checkOut string) (bool, error) {
			t.Fatal("CheckAvailability called for invalid dates")
			return false, nil
		},
	}
	w := &Workflow{Gateway: gw}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"reversed", "2026-03-12", "2026-03-10"},
		{"same day", "2026-03-10", "2026-03-10"},
		{"unparseable", "10/03/2026", "2026-03-12"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := stayRequest()
			req.CheckInDate = tc.checkIn
			req.CheckOutDate = tc.checkOut
			if _, err := w.Submit(context.Background(), req); !errors.Is(err, ErrInvalidDates) {
				t.Errorf("Submit() error = %v, want ErrInvalidDates", err)
			}
		})
	}
}

func TestSubmitPropagatesAvailabilityError(t *testing.T) {
	apiErr := apiError(http.StatusNotFound, "Room not found")
	gw := &mockGateway{
		checkAvailability: func(roomID uint, checkIn, checkOut string) (bool, error) {
			return false, apiErr
		},
	}
	w := &Workflow{Gateway: gw}

	_, err := w.Submit(context.Background(), stayRequest())
	var got *APIError
	if !errors.As(err, &got) || got.StatusCode != http.StatusNotFound {
		t.Fatalf("Submit() error = %v, want the 404 API error", err)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid dates", ErrInvalidDates, "Check-out date must be after check-in date"},
		{"unavailable", ErrUnavailable, "Room is not available for the selected dates"},
		{
			"string detail",
			&APIError{StatusCode: 400, Detail: json.RawMessage(`"Room is not available for the selected dates"`)},
			"Room is not available for the selected dates",
		},
		{
			"validation error list",
			&APIError{StatusCode: 422, Detail: json.RawMessage(`[{"msg":"field required"},{"msg":"value is not a valid email"}]`)},
			"field required, value is not a valid email",
		},
		{
			"single structured error",
			&APIError{StatusCode: 422, Detail: json.RawMessage(`{"msg":"field required"}`)},
			"field required",
		},
		{"no detail", &APIError{StatusCode: 500}, genericSubmitError},
		{"plain error", errors.New("connection refused"), genericSubmitError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ErrorMessage(tc.err); got != tc.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}
