package utils

import (
	"testing"
	"time"
)

func TestParseDateCalendarDate(t *testing.T) {
	d, err := ParseDate("2024-01-04")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.January || d.Day() != 4 {
		t.Fatalf("unexpected date: %v", d)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	d, err := ParseDate("2024-01-04T10:30:00Z")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Day() != 4 || d.Hour() != 10 {
		t.Fatalf("unexpected time: %v", d)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("04/01/2024"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-01-04")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(d); got != "2024-01-04" {
		t.Fatalf("expected 2024-01-04, got %q", got)
	}
}
