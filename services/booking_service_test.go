package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
)

func TestStartOfDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"late evening ist",
			time.Date(2026, 3, 10, 23, 30, 0, 0, ist),
			time.Date(2026, 3, 10, 0, 0, 0, 0, ist),
		},
		{
			"just after midnight ist",
			time.Date(2026, 3, 10, 0, 0, 1, 0, ist),
			time.Date(2026, 3, 10, 0, 0, 0, 0, ist),
		},
		{
			"utc noon",
			time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := startOfDay(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("startOfDay(%v) = %v, want %v", tc.in, got, tc.want)
			}
			if got.Location() != tc.in.Location() {
				t.Errorf("startOfDay(%v) location = %v, want %v", tc.in, got.Location(), tc.in.Location())
			}
		})
	}
}

func TestIsDuplicateKey(t *testing.T) {
	dup := &mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry 'abc' for key 'idx_bookings_idempotency_key'"}

	if !isDuplicateKey(dup) {
		t.Error("isDuplicateKey(1062) = false, want true")
	}
	if !isDuplicateKey(fmt.Errorf("failed to create booking: %w", dup)) {
		t.Error("isDuplicateKey(wrapped 1062) = false, want true")
	}
	if isDuplicateKey(&mysqldrv.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}) {
		t.Error("isDuplicateKey(1452) = true, want false")
	}
	if isDuplicateKey(errors.New("duplicate entry")) {
		t.Error("isDuplicateKey(plain error) = true, want false")
	}
	if isDuplicateKey(nil) {
		t.Error("isDuplicateKey(nil) = true, want false")
	}
}
