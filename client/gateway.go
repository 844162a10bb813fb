// Package client is the consumer side of the booking API: a Gateway
// abstraction with a real HTTP implementation and an in-memory fixture
// implementation, plus the two-step submit workflow the booking form runs.
// The fixture gateway replaces the old cross-cutting "mock API" request
// interceptor; which implementation to use is decided once at startup.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Gateway interface {
	ListRooms(ctx context.Context) ([]Room, error)
	GetRoom(ctx context.Context, roomID uint) (*Room, error)
	CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut string) (bool, error)
	CreateBooking(ctx context.Context, req StayRequest) (*Booking, error)
	GetBooking(ctx context.Context, bookingID uint) (*Booking, error)
	UpdateBooking(ctx context.Context, bookingID uint, upd BookingUpdate) (*Booking, error)
	CancelBooking(ctx context.Context, bookingID uint) error
}

// coerceStayDate appends T00:00:00 to bare dates so the backend always
// receives a full datetime.
func coerceStayDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != "" && !strings.Contains(raw, "T") {
		return raw + "T00:00:00"
	}
	return raw
}

func parseStayDate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05", coerceStayDate(raw))
}

// APIError is a non-2xx response. Detail carries the raw "detail" member
// of the body, when the body had one.
type APIError struct {
	StatusCode int
	Detail     json.RawMessage
}

func (e *APIError) Error() string {
	if msg, ok := detailMessage(e.Detail); ok {
		return msg
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// detailMessage extracts a human message from a FastAPI-style detail
// value, in priority order: plain string, array of structured errors
// (msg fields joined with ", "), single structured error's msg.
func detailMessage(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var list []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			var msg string
			if err := json.Unmarshal(item["msg"], &msg); err == nil && msg != "" {
				parts = append(parts, msg)
				continue
			}
			b, _ := json.Marshal(item)
			parts = append(parts, string(b))
		}
		return strings.Join(parts, ", "), true
	}

	var obj struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Msg != "" {
		return obj.Msg, true
	}

	return string(raw), true
}
