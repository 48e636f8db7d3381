package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-11-05")
	if err != nil {
		t.Fatalf("ParseDate returned unexpected error: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.November || got.Day() != 5 {
		t.Errorf("ParseDate = %v, want 2025-11-05", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("ParseDate should return midnight, got %v", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	inputs := []string{"2025-13-01", "05-11-2025", "garbage", ""}
	for _, input := range inputs {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) should have failed", input)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if !ValidateDate("2025-01-31") {
		t.Error("ValidateDate(2025-01-31) = false, want true")
	}
	if ValidateDate("2025-02-30") {
		t.Error("ValidateDate(2025-02-30) = true, want false")
	}
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2025, time.November, 5, 23, 59, 59, 0, time.UTC)
	if got := DayOf(ts); got != "2025-11-05" {
		t.Errorf("DayOf = %s, want 2025-11-05", got)
	}
}
