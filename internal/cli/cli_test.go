package cli

import (
	"testing"
	"time"
)

func TestResolveReferenceDate(t *testing.T) {
	got, err := ResolveReferenceDate("2025-03-15")
	if err != nil {
		t.Fatalf("ResolveReferenceDate: %v", err)
	}
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got, err = ResolveReferenceDate("")
	if err != nil {
		t.Fatalf("ResolveReferenceDate empty: %v", err)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("empty date should resolve to midnight, got %v", got)
	}

	if _, err := ResolveReferenceDate("15/03/2025"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestResolveRange(t *testing.T) {
	// Wednesday
	ref := time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		preset    string
		start     string
		end       string
		wantStart string
		wantEnd   string
		wantHas   bool
		wantErr   bool
	}{
		{name: "no filter", wantHas: false},
		{name: "preset today", preset: "today", wantStart: "2025-03-12", wantEnd: "2025-03-12", wantHas: true},
		{name: "preset this_week", preset: "this_week", wantStart: "2025-03-10", wantEnd: "2025-03-12", wantHas: true},
		{name: "unknown preset", preset: "last_month", wantErr: true},
		{name: "explicit range", start: "2025-03-01", end: "2025-03-31", wantStart: "2025-03-01", wantEnd: "2025-03-31", wantHas: true},
		{name: "start without end", start: "2025-03-01", wantErr: true},
		{name: "end without start", end: "2025-03-31", wantErr: true},
		{name: "preset with range", preset: "today", start: "2025-03-01", end: "2025-03-31", wantErr: true},
		{name: "malformed start", start: "03-01-2025", end: "2025-03-31", wantErr: true},
		{name: "inverted range", start: "2025-03-31", end: "2025-03-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, has, err := ResolveRange(tt.preset, tt.start, tt.end, ref)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if has != tt.wantHas {
				t.Errorf("hasRange = %v, want %v", has, tt.wantHas)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("range = [%s, %s], want [%s, %s]", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolveRangeWeekStartOnMonday(t *testing.T) {
	// Reference date already a Monday: this_week collapses to a single day.
	ref := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	start, end, has, err := ResolveRange("this_week", "", "", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !has || start != "2025-03-10" || end != "2025-03-10" {
		t.Errorf("got [%s, %s] has=%v, want [2025-03-10, 2025-03-10] has=true", start, end, has)
	}
}
