package services

import (
	"testing"
	"time"

	"shivashray-backend/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func priceOf(v float64) *float64 { return &v }

func deluxeRoom() models.RoomType {
	return models.RoomType{
		Name:            "Deluxe Room",
		MaxOccupancy:    3,
		BaseOccupancy:   2,
		BasePrice:       4000,
		ExtraAdultPrice: priceOf(1500),
		ChildPrice:      priceOf(1200),
	}
}

func familyRoom() models.RoomType {
	return models.RoomType{
		Name:            "Family Room",
		MaxOccupancy:    6,
		BaseOccupancy:   4,
		BasePrice:       6500,
		ExtraAdultPrice: priceOf(2275),
		ChildPrice:      priceOf(1625),
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"two full days", day("2026-03-10"), day("2026-03-12"), 2},
		{"single night", day("2026-03-10"), day("2026-03-11"), 1},
		{"fraction rounds up", day("2026-03-10"), day("2026-03-11").Add(6 * time.Hour), 2},
		{"same day", day("2026-03-10"), day("2026-03-10"), 0},
		{"reversed", day("2026-03-12"), day("2026-03-10"), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Nights(tc.checkIn, tc.checkOut); got != tc.want {
				t.Errorf("Nights() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBaseOccupancy(t *testing.T) {
	tests := []struct {
		name string
		rt   models.RoomType
		want int
	}{
		{"explicit column wins", models.RoomType{Name: "Family Room", BaseOccupancy: 3}, 3},
		{"family name fallback", models.RoomType{Name: "Family Room"}, 4},
		{"family name as substring", models.RoomType{Name: "Grand Family Room"}, 4},
		{"default fallback", models.RoomType{Name: "Deluxe Room"}, 2},
		{"empty name", models.RoomType{}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BaseOccupancy(tc.rt); got != tc.want {
				t.Errorf("BaseOccupancy() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestQuoteStay(t *testing.T) {
	tests := []struct {
		name     string
		rt       models.RoomType
		checkIn  time.Time
		checkOut time.Time
		adults   int
		children int
		want     PriceBreakdown
	}{
		{
			name:    "deluxe with extra adult and child",
			rt:      deluxeRoom(),
			checkIn: day("2026-03-10"), checkOut: day("2026-03-12"),
			adults: 3, children: 1,
			want: PriceBreakdown{
				Nights:           2,
				BaseAmount:       8000,
				ExtraAdultAmount: 3000,
				ChildAmount:      2400,
				TotalAmount:      13400,
			},
		},
		{
			name:    "family room within base occupancy",
			rt:      familyRoom(),
			checkIn: day("2026-03-10"), checkOut: day("2026-03-13"),
			adults: 4, children: 0,
			want: PriceBreakdown{
				Nights:      3,
				BaseAmount:  19500,
				TotalAmount: 19500,
			},
		},
		{
			name:    "family room with surcharges",
			rt:      familyRoom(),
			checkIn: day("2026-03-10"), checkOut: day("2026-03-11"),
			adults: 5, children: 1,
			want: PriceBreakdown{
				Nights:           1,
				BaseAmount:       6500,
				ExtraAdultAmount: 2275,
				ChildAmount:      1625,
				TotalAmount:      10400,
			},
		},
		{
			name: "unset surcharge prices contribute nothing",
			rt: models.RoomType{
				Name:          "Standard Room",
				BaseOccupancy: 2,
				BasePrice:     3000,
			},
			checkIn: day("2026-03-10"), checkOut: day("2026-03-12"),
			adults: 4, children: 2,
			want: PriceBreakdown{
				Nights:      2,
				BaseAmount:  6000,
				TotalAmount: 6000,
			},
		},
		{
			name:    "late checkout bills an extra night",
			rt:      deluxeRoom(),
			checkIn: day("2026-03-10"), checkOut: day("2026-03-12").Add(10 * time.Hour),
			adults: 2, children: 0,
			want: PriceBreakdown{
				Nights:      3,
				BaseAmount:  12000,
				TotalAmount: 12000,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := QuoteStay(tc.rt, tc.checkIn, tc.checkOut, tc.adults, tc.children)
			if err != nil {
				t.Fatalf("QuoteStay() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("QuoteStay() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestQuoteStayInvalidStay(t *testing.T) {
	rt := deluxeRoom()

	if _, err := QuoteStay(rt, day("2026-03-12"), day("2026-03-10"), 2, 0); err != ErrInvalidStay {
		t.Errorf("reversed dates: error = %v, want ErrInvalidStay", err)
	}
	if _, err := QuoteStay(rt, day("2026-03-10"), day("2026-03-10"), 2, 0); err != ErrInvalidStay {
		t.Errorf("zero-length stay: error = %v, want ErrInvalidStay", err)
	}
}
