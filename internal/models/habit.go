package models

import "time"

// Cadence is how often a habit is intended to be performed.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Cadence     Cadence    `json:"cadence"`
	CreatedAt   time.Time  `json:"created_at"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// CompletionEvent records a single instance of a habit being performed.
// Events are immutable once written. Day is the calendar date derived from
// OccurredAt; all aggregation keys on Day, never on the full timestamp.
type CompletionEvent struct {
	ID              string    `json:"id"`
	HabitID         string    `json:"habit_id"`
	Day             string    `json:"day"` // YYYY-MM-DD format
	Note            string    `json:"note,omitempty"`
	DurationText    string    `json:"duration,omitempty"` // raw text as entered, e.g. "1:30"
	DurationMinutes int       `json:"duration_minutes"`
	OccurredAt      time.Time `json:"occurred_at"`
	CreatedAt       time.Time `json:"created_at"`
}
