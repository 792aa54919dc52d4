package handlers

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestRentalDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-01-01", "2024-01-04", 3},
		{"2024-01-01", "2024-01-02", 1},
		{"2024-02-27", "2024-03-02", 4}, // across a leap day
		{"2024-01-01", "2024-01-01", 0}, // same-day booking bills zero days
		{"2024-01-04", "2024-01-01", -3},
	}
	for _, tc := range cases {
		got := rentalDays(date(t, tc.start), date(t, tc.end))
		if got != tc.want {
			t.Fatalf("rentalDays(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestTotalPrice(t *testing.T) {
	got := totalPrice(50, date(t, "2024-01-01"), date(t, "2024-01-04"))
	if got != 150 {
		t.Fatalf("expected total 150, got %v", got)
	}
}

// Equal start and end dates produce a zero total and are still accepted;
// reversed ranges produce a negative total. Both are established
// behavior, not oversights in these tests.
func TestTotalPriceDegenerateRanges(t *testing.T) {
	if got := totalPrice(50, date(t, "2024-01-01"), date(t, "2024-01-01")); got != 0 {
		t.Fatalf("expected zero total for same-day range, got %v", got)
	}
	if got := totalPrice(50, date(t, "2024-01-04"), date(t, "2024-01-01")); got != -150 {
		t.Fatalf("expected -150 for reversed range, got %v", got)
	}
}
