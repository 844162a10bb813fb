package client

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidDates = errors.New("Check-out date must be after check-in date")
	ErrUnavailable  = errors.New("Room is not available for the selected dates")
)

const genericSubmitError = "Failed to create booking. Please try again."

// Workflow runs the booking form's submit sequence against any Gateway.
type Workflow struct {
	Gateway Gateway
}

// Submit validates the stay dates, confirms the room is still free and only
// then sends the booking. The availability check always runs first so an
// already-taken room never produces a half-made booking. Each submission
// carries an idempotency key, so a retried request replays the original
// booking instead of creating a second one.
func (w *Workflow) Submit(ctx context.Context, req StayRequest) (*Booking, error) {
	in, err := parseStayDate(req.CheckInDate)
	if err != nil {
		return nil, ErrInvalidDates
	}
	out, err := parseStayDate(req.CheckOutDate)
	if err != nil {
		return nil, ErrInvalidDates
	}
	if !out.After(in) {
		return nil, ErrInvalidDates
	}

	available, err := w.Gateway.CheckAvailability(ctx, req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrUnavailable
	}

	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}
	return w.Gateway.CreateBooking(ctx, req)
}

// Cancel asks the backend to cancel the booking.
func (w *Workflow) Cancel(ctx context.Context, bookingID uint) error {
	return w.Gateway.CancelBooking(ctx, bookingID)
}

// ErrorMessage renders err for the booking form. API errors surface their
// detail text; anything else falls back to a generic message so internals
// never reach the user.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrInvalidDates) || errors.Is(err, ErrUnavailable) {
		return err.Error()
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg, ok := detailMessage(apiErr.Detail); ok {
			return msg
		}
	}
	return genericSubmitError
}
