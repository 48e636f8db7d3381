// Package duration parses human-entered duration text ("30 min", "2 hours",
// "1:30", "45") into whole minutes.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidFormat is returned when the text matches none of the
	// accepted duration forms.
	ErrInvalidFormat = errors.New("unrecognized duration format (try '30 min', '1 hour', '1:30', or plain minutes)")

	// ErrNonPositive is for callers that require a duration greater than
	// zero. Parse itself accepts "0" and "0:00"; whether that is allowed
	// is a policy decision made where the value is used.
	ErrNonPositive = errors.New("duration must be greater than zero")
)

var (
	hmPat  = regexp.MustCompile(`^\s*(\d+)\s*:\s*(\d+)\s*$`)
	hrPat  = regexp.MustCompile(`(?i)^\s*(\d+)\s*(h|hr|hrs|hour|hours)\s*$`)
	minPat = regexp.MustCompile(`(?i)^\s*(\d+)\s*(min|mins|minute|minutes)?\s*$`)
)

// Parse converts a duration string to minutes. Three forms are accepted,
// tried in this order:
//
//	H:MM      "1:30" -> 90
//	N hours   "2 hours", "2h" -> 120
//	N minutes "45", "45 min" -> 45
//
// Matching is case-insensitive and tolerates surrounding whitespace. The
// minutes component of H:MM is not capped at 59: "1:90" parses as 150.
func Parse(text string) (int, error) {
	if m := hmPat.FindStringSubmatch(text); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		mins, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return hours*60 + mins, nil
	}
	if m := hrPat.FindStringSubmatch(text); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return hours * 60, nil
	}
	if m := minPat.FindStringSubmatch(text); m != nil {
		mins, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return mins, nil
	}
	return 0, ErrInvalidFormat
}

// ParsePositive parses text and additionally rejects results of zero
// minutes, returning ErrNonPositive. This is the form the CLI and TUI use
// when recording completions.
func ParsePositive(text string) (int, error) {
	mins, err := Parse(text)
	if err != nil {
		return 0, err
	}
	if mins <= 0 {
		return 0, ErrNonPositive
	}
	return mins, nil
}
