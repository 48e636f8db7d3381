package postgres

import (
	"fmt"
	"time"

	"github.com/jurgenbaeza/habit-tracker/internal/models"
)

const eventColumns = "id, habit_id, day, note, duration_text, duration_minutes, occurred_at, created_at"

func scanEvent(row interface {
	Scan(dest ...interface{}) error
}) (models.CompletionEvent, error) {
	var e models.CompletionEvent
	var occurredAt, createdAt string

	err := row.Scan(&e.ID, &e.HabitID, &e.Day, &e.Note, &e.DurationText,
		&e.DurationMinutes, &occurredAt, &createdAt)
	if err != nil {
		return models.CompletionEvent{}, err
	}

	e.OccurredAt, err = time.Parse(time.RFC3339, occurredAt)
	if err != nil {
		return models.CompletionEvent{}, fmt.Errorf("failed to parse occurred_at: %w", err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.CompletionEvent{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return e, nil
}

func (s *Store) AddEvent(event models.CompletionEvent) error {
	_, err := s.db.Exec(`
		INSERT INTO completion_events (id, habit_id, day, note, duration_text, duration_minutes, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.ID, event.HabitID, event.Day, event.Note, event.DurationText,
		event.DurationMinutes, event.OccurredAt.Format(time.RFC3339), event.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetEvent(id string) (models.CompletionEvent, error) {
	row := s.db.QueryRow(`
		SELECT `+eventColumns+` FROM completion_events WHERE id = $1`, id)
	return scanEvent(row)
}

func (s *Store) queryEvents(query string, args ...interface{}) ([]models.CompletionEvent, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.CompletionEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (s *Store) GetEventsForHabit(habitID, startDay, endDay string) ([]models.CompletionEvent, error) {
	return s.queryEvents(`
		SELECT `+eventColumns+` FROM completion_events
		WHERE habit_id = $1 AND day >= $2 AND day <= $3
		ORDER BY day DESC, created_at DESC`, habitID, startDay, endDay)
}

func (s *Store) GetEventsInRange(startDay, endDay string) ([]models.CompletionEvent, error) {
	return s.queryEvents(`
		SELECT `+eventColumns+` FROM completion_events
		WHERE day >= $1 AND day <= $2
		ORDER BY day DESC, created_at DESC`, startDay, endDay)
}

func (s *Store) GetAllEvents() ([]models.CompletionEvent, error) {
	return s.queryEvents(`
		SELECT ` + eventColumns + ` FROM completion_events
		ORDER BY day DESC, created_at DESC`)
}

func (s *Store) GetAllEventsForHabit(habitID string) ([]models.CompletionEvent, error) {
	return s.queryEvents(`
		SELECT `+eventColumns+` FROM completion_events
		WHERE habit_id = $1
		ORDER BY day DESC, created_at DESC`, habitID)
}

func (s *Store) DeleteEvent(id string) error {
	result, err := s.db.Exec(`DELETE FROM completion_events WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("completion event not found")
	}

	return nil
}
