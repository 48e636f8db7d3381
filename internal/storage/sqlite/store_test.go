package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jurgenbaeza/habit-tracker/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testHabit(name string) models.Habit {
	return models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Cadence:   models.CadenceDaily,
		CreatedAt: time.Now(),
	}
}

func testEvent(habitID, day string, minutes int) models.CompletionEvent {
	occurred, _ := time.Parse("2006-01-02", day)
	return models.CompletionEvent{
		ID:              uuid.New().String(),
		HabitID:         habitID,
		Day:             day,
		DurationText:    "whatever",
		DurationMinutes: minutes,
		OccurredAt:      occurred,
		CreatedAt:       time.Now(),
	}
}

func TestHabitCRUD(t *testing.T) {
	store := setupTestStore(t)

	habit := testHabit("Morning meditation")
	habit.Description = "10 minutes before breakfast"

	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	retrieved, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if retrieved.Name != habit.Name {
		t.Errorf("expected name %q, got %q", habit.Name, retrieved.Name)
	}
	if retrieved.Description != habit.Description {
		t.Errorf("expected description %q, got %q", habit.Description, retrieved.Description)
	}
	if retrieved.Cadence != models.CadenceDaily {
		t.Errorf("expected cadence daily, got %q", retrieved.Cadence)
	}

	byName, err := store.GetHabitByName(habit.Name)
	if err != nil {
		t.Fatalf("failed to get habit by name: %v", err)
	}
	if byName.ID != habit.ID {
		t.Errorf("expected ID %q, got %q", habit.ID, byName.ID)
	}

	habit.Name = "Updated meditation"
	if err := store.UpdateHabit(habit); err != nil {
		t.Fatalf("failed to update habit: %v", err)
	}

	updated, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get updated habit: %v", err)
	}
	if updated.Name != "Updated meditation" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
}

func TestHabitArchive(t *testing.T) {
	store := setupTestStore(t)

	habit := testHabit("Test habit")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if err := store.ArchiveHabit(habit.ID); err != nil {
		t.Fatalf("failed to archive habit: %v", err)
	}

	habits, err := store.GetAllHabits(false, false)
	if err != nil {
		t.Fatalf("failed to get habits: %v", err)
	}
	for _, h := range habits {
		if h.ID == habit.ID {
			t.Error("archived habit should not appear in default list")
		}
	}

	archived, err := store.GetAllHabits(true, false)
	if err != nil {
		t.Fatalf("failed to get archived habits: %v", err)
	}
	found := false
	for _, h := range archived {
		if h.ID == habit.ID && h.ArchivedAt != nil {
			found = true
		}
	}
	if !found {
		t.Error("archived habit should appear when includeArchived is set")
	}

	if err := store.UnarchiveHabit(habit.ID); err != nil {
		t.Fatalf("failed to unarchive habit: %v", err)
	}
	if err := store.UnarchiveHabit(habit.ID); err == nil {
		t.Error("unarchiving a non-archived habit should fail")
	}
}

func TestHabitSoftDeleteAndRestore(t *testing.T) {
	store := setupTestStore(t)

	habit := testHabit("Doomed habit")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if err := store.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}

	if _, err := store.GetHabit(habit.ID); err == nil {
		t.Error("deleted habit should not be retrievable")
	}

	if err := store.DeleteHabit(habit.ID); err == nil {
		t.Error("double delete should fail")
	}

	if err := store.RestoreHabit(habit.ID); err != nil {
		t.Fatalf("failed to restore habit: %v", err)
	}

	restored, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get restored habit: %v", err)
	}
	if restored.DeletedAt != nil {
		t.Error("restored habit should have nil DeletedAt")
	}
}

func TestEventAddAndGet(t *testing.T) {
	store := setupTestStore(t)

	habit := testHabit("Reading")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	event := testEvent(habit.ID, "2025-11-05", 30)
	event.Note = "chapter 4"
	event.DurationText = "30 min"

	if err := store.AddEvent(event); err != nil {
		t.Fatalf("failed to add event: %v", err)
	}

	retrieved, err := store.GetEvent(event.ID)
	if err != nil {
		t.Fatalf("failed to get event: %v", err)
	}
	if retrieved.Day != "2025-11-05" {
		t.Errorf("expected day 2025-11-05, got %q", retrieved.Day)
	}
	if retrieved.DurationMinutes != 30 {
		t.Errorf("expected 30 minutes, got %d", retrieved.DurationMinutes)
	}
	if retrieved.DurationText != "30 min" {
		t.Errorf("expected raw text preserved, got %q", retrieved.DurationText)
	}
	if retrieved.Note != "chapter 4" {
		t.Errorf("expected note preserved, got %q", retrieved.Note)
	}
}

func TestEventRangeQueries(t *testing.T) {
	store := setupTestStore(t)

	reading := testHabit("Reading")
	running := testHabit("Running")
	for _, h := range []models.Habit{reading, running} {
		if err := store.AddHabit(h); err != nil {
			t.Fatalf("failed to add habit: %v", err)
		}
	}

	days := []string{"2025-11-01", "2025-11-03", "2025-11-05", "2025-11-10"}
	for _, day := range days {
		if err := store.AddEvent(testEvent(reading.ID, day, 20)); err != nil {
			t.Fatalf("failed to add event: %v", err)
		}
	}
	if err := store.AddEvent(testEvent(running.ID, "2025-11-03", 45)); err != nil {
		t.Fatalf("failed to add event: %v", err)
	}

	// Range is inclusive on both ends.
	events, err := store.GetEventsInRange("2025-11-03", "2025-11-05")
	if err != nil {
		t.Fatalf("failed to query range: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("expected 3 events in range, got %d", len(events))
	}

	habitEvents, err := store.GetEventsForHabit(reading.ID, "2025-11-03", "2025-11-05")
	if err != nil {
		t.Fatalf("failed to query habit range: %v", err)
	}
	if len(habitEvents) != 2 {
		t.Errorf("expected 2 reading events in range, got %d", len(habitEvents))
	}
	for _, e := range habitEvents {
		if e.HabitID != reading.ID {
			t.Errorf("expected only reading events, got habit %q", e.HabitID)
		}
	}

	all, err := store.GetAllEvents()
	if err != nil {
		t.Fatalf("failed to query all events: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("expected 5 events total, got %d", len(all))
	}

	allReading, err := store.GetAllEventsForHabit(reading.ID)
	if err != nil {
		t.Fatalf("failed to query all habit events: %v", err)
	}
	if len(allReading) != 4 {
		t.Errorf("expected 4 reading events, got %d", len(allReading))
	}
}

func TestEventDelete(t *testing.T) {
	store := setupTestStore(t)

	habit := testHabit("Reading")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	event := testEvent(habit.ID, "2025-11-05", 30)
	if err := store.AddEvent(event); err != nil {
		t.Fatalf("failed to add event: %v", err)
	}

	if err := store.DeleteEvent(event.ID); err != nil {
		t.Fatalf("failed to delete event: %v", err)
	}
	if err := store.DeleteEvent(event.ID); err == nil {
		t.Error("deleting a missing event should fail")
	}
}

func TestLoadWithoutInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.db")
	store := NewStore(dbPath)
	if err := store.Load(); err == nil {
		t.Error("Load on an uninitialized path should fail")
	}
}
