package duration

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1:30", 90},
		{"0:45", 45},
		{"2 hours", 120},
		{"1 hour", 60},
		{"2h", 120},
		{"3 hrs", 180},
		{"45 min", 45},
		{"45 mins", 45},
		{"1 minute", 1},
		{"90 minutes", 90},
		{"45", 45},
		{"  45  ", 45},
		{"2 HOURS", 120},
		{"30 MIN", 30},
		{" 1 : 30 ", 90},
		// The minutes component of H:MM is intentionally uncapped.
		{"1:90", 150},
		{"0:00", 0},
		{"0", 0},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) returned unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseInvalidFormat(t *testing.T) {
	inputs := []string{
		"garbage",
		"",
		"1.5 hours",
		"-30",
		"30 sec",
		"1:30:00",
		"hour",
	}

	for _, input := range inputs {
		if _, err := Parse(input); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", input, err)
		}
	}
}

func TestParsePositive(t *testing.T) {
	if _, err := ParsePositive("0"); !errors.Is(err, ErrNonPositive) {
		t.Errorf("ParsePositive(\"0\") error = %v, want ErrNonPositive", err)
	}
	if _, err := ParsePositive("0:00"); !errors.Is(err, ErrNonPositive) {
		t.Errorf("ParsePositive(\"0:00\") error = %v, want ErrNonPositive", err)
	}
	got, err := ParsePositive("1:30")
	if err != nil {
		t.Fatalf("ParsePositive(\"1:30\") returned unexpected error: %v", err)
	}
	if got != 90 {
		t.Errorf("ParsePositive(\"1:30\") = %d, want 90", got)
	}
}
