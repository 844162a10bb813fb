package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"shivashray-backend/models"
)

// ErrInvalidStay is returned when the stay does not span at least part of a
// night (check-out not after check-in). Callers must treat it as a
// validation failure, never as a zero-charge quote.
var ErrInvalidStay = errors.New("check-out date must be after check-in date")

// PriceBreakdown is derived from a room type and a stay; it is recomputed
// on demand and never persisted on its own.
type PriceBreakdown struct {
	Nights           int     `json:"nights"`
	BaseAmount       float64 `json:"base_amount"`
	ExtraAdultAmount float64 `json:"extra_adult_amount"`
	ChildAmount      float64 `json:"child_amount"`
	TotalAmount      float64 `json:"total_amount"`
}

// Nights bills any fraction of a day as a full night (ceiling of the
// calendar-day span). A 1.5-day stay is 2 nights.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// BaseOccupancy returns the guest count included in the base rate. The
// explicit column wins; rows migrated without it fall back to the legacy
// name rule: "Family Room" types sleep 4 on the base rate, everything else 2.
func BaseOccupancy(rt models.RoomType) int {
	if rt.BaseOccupancy > 0 {
		return rt.BaseOccupancy
	}
	if strings.Contains(rt.Name, "Family Room") {
		return 4
	}
	return 2
}

// QuoteStay computes the charge breakdown for a stay. Pure function of its
// inputs: unset surcharge prices contribute nothing, adults within the base
// occupancy are covered by the base rate, every child is surcharged.
func QuoteStay(rt models.RoomType, checkIn, checkOut time.Time, adults, children int) (PriceBreakdown, error) {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return PriceBreakdown{}, ErrInvalidStay
	}

	bd := PriceBreakdown{
		Nights:     nights,
		BaseAmount: float64(nights) * rt.BasePrice,
	}

	if extra := adults - BaseOccupancy(rt); extra > 0 && rt.ExtraAdultPrice != nil {
		bd.ExtraAdultAmount = float64(extra) * *rt.ExtraAdultPrice * float64(nights)
	}
	if children > 0 && rt.ChildPrice != nil {
		bd.ChildAmount = float64(children) * *rt.ChildPrice * float64(nights)
	}

	bd.TotalAmount = bd.BaseAmount + bd.ExtraAdultAmount + bd.ChildAmount
	return bd, nil
}
