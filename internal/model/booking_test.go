package model

import "testing"

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		in, out  string
		want     int
		wantErr  bool
	}{
		{"three nights", "2025-06-01", "2025-06-04", 3, false},
		{"single night", "2025-06-01", "2025-06-02", 1, false},
		{"same day", "2025-06-01", "2025-06-01", 0, true},
		{"inverted", "2025-06-04", "2025-06-01", 0, true},
		{"across month end", "2025-01-30", "2025-02-02", 3, false},
		{"malformed", "01/06/2025", "2025-06-04", 0, true},
	}
	for _, tc := range cases {
		n, err := Nights(tc.in, tc.out)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got nights=%d", tc.name, n)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if n != tc.want {
			t.Fatalf("%s: nights=%d want %d", tc.name, n, tc.want)
		}
	}
}

func TestTotalPriceSnapshot(t *testing.T) {
	total, err := TotalPrice("2025-06-01", "2025-06-04", 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 450 {
		t.Fatalf("total=%v want 450", total)
	}
}

func TestTotalPriceRejectsBadRange(t *testing.T) {
	if _, err := TotalPrice("2025-06-04", "2025-06-01", 150); err != ErrBadDateRange {
		t.Fatalf("expected ErrBadDateRange, got %v", err)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
	}
	for _, p := range allowed {
		if !CanTransition(p[0], p[1]) {
			t.Fatalf("%s -> %s should be legal", p[0], p[1])
		}
	}
	denied := [][2]string{
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusPending},
		{StatusCompleted, StatusCancelled},
		{StatusPending, StatusCompleted},
		{"bogus", StatusCancelled},
	}
	for _, p := range denied {
		if CanTransition(p[0], p[1]) {
			t.Fatalf("%s -> %s should be illegal", p[0], p[1])
		}
	}
}
