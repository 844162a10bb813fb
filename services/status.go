package services

import (
	"errors"

	"shivashray-backend/models"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// bookingTransitions is the allowed edge set for booking statuses.
// cancelled is reachable from every non-terminal state; cancelled and
// checked_out have no outgoing edges.
var bookingTransitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCheckedIn, models.BookingCancelled},
	models.BookingCheckedIn: {models.BookingCheckedOut, models.BookingCancelled},
}

var paymentTransitions = map[string][]string{
	models.PaymentPending: {models.PaymentPaid},
	models.PaymentPaid:    {models.PaymentRefunded},
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransitionBooking reports whether a booking may move from one status
// to another. Setting the current status again is a no-op and allowed.
func CanTransitionBooking(from, to string) bool {
	if from == to {
		return true
	}
	return contains(bookingTransitions[from], to)
}

func CanTransitionPayment(from, to string) bool {
	if from == to {
		return true
	}
	return contains(paymentTransitions[from], to)
}

// IsTerminalBookingStatus reports whether no further transitions exist.
func IsTerminalBookingStatus(status string) bool {
	return len(bookingTransitions[status]) == 0
}

func IsValidBookingStatus(status string) bool {
	switch status {
	case models.BookingPending, models.BookingConfirmed, models.BookingCheckedIn,
		models.BookingCheckedOut, models.BookingCancelled:
		return true
	}
	return false
}

func IsValidPaymentStatus(status string) bool {
	switch status {
	case models.PaymentPending, models.PaymentPaid, models.PaymentRefunded:
		return true
	}
	return false
}
