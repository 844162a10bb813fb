package services

import "testing"

func intPtr(v int) *int { return &v }

func TestResolveGuests(t *testing.T) {
	tests := []struct {
		name      string
		guests    int
		adults    *int
		children  *int
		wantTotal int
		wantA     int
		wantC     int
	}{
		{"total only", 3, nil, nil, 3, 3, 0},
		{"adults and children given", 2, intPtr(3), intPtr(1), 4, 3, 1},
		{"children only", 2, nil, intPtr(2), 4, 2, 2},
		{"zero guests defaults to one adult", 0, nil, nil, 1, 1, 0},
		{"negative counters ignored", 2, intPtr(-1), intPtr(-3), 2, 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			total, a, c := ResolveGuests(tc.guests, tc.adults, tc.children)
			if total != tc.wantTotal || a != tc.wantA || c != tc.wantC {
				t.Errorf("ResolveGuests(%d, %v, %v) = (%d, %d, %d), want (%d, %d, %d)",
					tc.guests, tc.adults, tc.children, total, a, c, tc.wantTotal, tc.wantA, tc.wantC)
			}
		})
	}
}
