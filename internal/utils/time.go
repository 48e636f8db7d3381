package utils

import (
	"fmt"
	"time"

	"github.com/jurgenbaeza/habit-tracker/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string (YYYY-MM-DD) and returns it at midnight
// in the local timezone.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// ValidateDate checks if the string is a valid YYYY-MM-DD date.
func ValidateDate(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// DayOf truncates a timestamp to its date string (YYYY-MM-DD).
func DayOf(t time.Time) string {
	return t.Format(constants.DateFormat)
}
