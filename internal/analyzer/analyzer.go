// Package analyzer derives summaries from a user's habit-completion history:
// per-day and weekly duration totals, and consecutive-day streaks.
//
// Every function takes an explicit reference date in place of the system
// clock, so results are deterministic. Nothing here performs I/O or mutates
// its inputs; callers fetch an event snapshot from storage and hand it in.
package analyzer

import (
	"sort"
	"time"

	"github.com/jurgenbaeza/habit-tracker/internal/constants"
	"github.com/jurgenbaeza/habit-tracker/internal/models"
)

// WeekSummary holds per-day duration totals for one Monday..Sunday week.
// PerDay always has exactly 7 keys (YYYY-MM-DD); days after the reference
// date carry 0.
type WeekSummary struct {
	WeekStart     string         `json:"start_of_week"`
	ReferenceDate string         `json:"reference_date"`
	PerDay        map[string]int `json:"per_day"`
	TotalMinutes  int            `json:"weekly_total_minutes"`
}

// StreakResult holds consecutive-day streak lengths. Current counts
// backward from the reference date and is zero unless the reference date
// itself has activity; Longest is the longest run anywhere in the history.
type StreakResult struct {
	Current int `json:"current_streak_days"`
	Longest int `json:"longest_streak_days"`
}

// WeekStart returns the Monday of the week containing t, at midnight in
// t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// eventDay returns the calendar date an event counts toward. The stored
// Day column is authoritative; events that predate it fall back to a
// truncated timestamp.
func eventDay(ev models.CompletionEvent) string {
	if ev.Day != "" {
		return ev.Day
	}
	return ev.OccurredAt.Format(constants.DateFormat)
}

// WeeklyTotals sums duration minutes per day for the week containing the
// reference date. The window is [Monday, referenceDate] inclusive; the
// remaining days of the week are reported with zero minutes. Events outside
// the window, including future-dated events later in the same week, are
// ignored. An empty event set yields an all-zero week.
func WeeklyTotals(events []models.CompletionEvent, referenceDate time.Time) WeekSummary {
	ws := WeekStart(referenceDate)
	refDay := referenceDate.Format(constants.DateFormat)

	perDay := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		perDay[ws.AddDate(0, 0, i).Format(constants.DateFormat)] = 0
	}

	startDay := ws.Format(constants.DateFormat)
	total := 0
	for _, ev := range events {
		day := eventDay(ev)
		// ISO dates compare correctly as strings.
		if day < startDay || day > refDay {
			continue
		}
		if _, ok := perDay[day]; !ok {
			continue
		}
		perDay[day] += ev.DurationMinutes
		total += ev.DurationMinutes
	}

	return WeekSummary{
		WeekStart:     startDay,
		ReferenceDate: refDay,
		PerDay:        perDay,
		TotalMinutes:  total,
	}
}

// Streaks computes the current and longest consecutive-day streaks over the
// event history. A day is active if it has at least one event, regardless
// of duration. The current streak must include the reference date itself;
// a gap of even one day, including today, breaks it.
func Streaks(events []models.CompletionEvent, referenceDate time.Time) StreakResult {
	active := make(map[string]struct{}, len(events))
	for _, ev := range events {
		active[eventDay(ev)] = struct{}{}
	}
	if len(active) == 0 {
		return StreakResult{}
	}

	days := make([]string, 0, len(active))
	for d := range active {
		days = append(days, d)
	}
	sort.Strings(days)

	// Longest: scan ascending, extending the run while dates are exactly
	// one calendar day apart.
	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if nextDay(days[i-1]) == days[i] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	// Current: walk backward from the reference date until the first
	// inactive day.
	current := 0
	day := referenceDate.Format(constants.DateFormat)
	ref := referenceDate
	for {
		if _, ok := active[day]; !ok {
			break
		}
		current++
		ref = ref.AddDate(0, 0, -1)
		day = ref.Format(constants.DateFormat)
	}

	return StreakResult{Current: current, Longest: longest}
}

// nextDay returns the ISO date one calendar day after day. Malformed input
// yields an empty string, which never matches a real date.
func nextDay(day string) string {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(constants.DateFormat)
}
