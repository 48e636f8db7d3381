// Package storage defines the persistence contract for habits and their
// completion events, with SQLite and PostgreSQL implementations in
// subpackages.
package storage

import (
	"github.com/jurgenbaeza/habit-tracker/internal/models"
	"github.com/jurgenbaeza/habit-tracker/internal/storage/postgres"
	"github.com/jurgenbaeza/habit-tracker/internal/storage/sqlite"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Completion events. Range queries are inclusive on both ends and take
	// YYYY-MM-DD day strings; the caller resolves presets into ranges.
	AddEvent(models.CompletionEvent) error
	GetEvent(id string) (models.CompletionEvent, error)
	GetEventsForHabit(habitID, startDay, endDay string) ([]models.CompletionEvent, error)
	GetEventsInRange(startDay, endDay string) ([]models.CompletionEvent, error)
	GetAllEvents() ([]models.CompletionEvent, error)
	GetAllEventsForHabit(habitID string) ([]models.CompletionEvent, error)
	DeleteEvent(id string) error

	// Utils
	GetConfigPath() string
}

// NewSQLiteStore creates a Provider backed by a SQLite database file.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a Provider backed by a PostgreSQL database.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}
