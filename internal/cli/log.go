package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jurgenbaeza/habit-tracker/internal/duration"
	"github.com/jurgenbaeza/habit-tracker/internal/models"
	"github.com/jurgenbaeza/habit-tracker/internal/utils"
)

type LogCmd struct {
	Add    LogAddCmd    `cmd:"" help:"Record a habit completion."`
	List   LogListCmd   `cmd:"" help:"List recorded completions."`
	Delete LogDeleteCmd `cmd:"" help:"Delete a recorded completion."`
}

type LogAddCmd struct {
	Habit    string `arg:"" help:"Habit name."`
	Duration string `help:"Time spent, e.g. '30 min', '2 hours', '1:30' or plain minutes." required:""`
	Note     string `help:"Optional note for this completion." default:""`
	Date     string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *LogAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Habit)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Habit)
	}
	if habit.ArchivedAt != nil {
		return fmt.Errorf("habit %q is archived", c.Habit)
	}

	minutes, err := duration.ParsePositive(c.Duration)
	if err != nil {
		if errors.Is(err, duration.ErrNonPositive) {
			return fmt.Errorf("duration must be > 0")
		}
		return err
	}

	now := time.Now()
	occurred := now
	day := c.Date
	if day == "" {
		day = utils.DayOf(now)
	} else {
		parsed, err := utils.ParseDate(day)
		if err != nil {
			return err
		}
		occurred = parsed
	}

	event := models.CompletionEvent{
		ID:              uuid.New().String(),
		HabitID:         habit.ID,
		Day:             day,
		Note:            c.Note,
		DurationText:    c.Duration,
		DurationMinutes: minutes,
		OccurredAt:      occurred,
		CreatedAt:       now,
	}

	if err := ctx.Store.AddEvent(event); err != nil {
		return err
	}

	fmt.Printf("Logged %q for %s (%d min)\n", c.Habit, day, minutes)
	return nil
}

type LogListCmd struct {
	Habit  string `help:"Filter to one habit by name." default:""`
	Preset string `help:"Named range: today or this_week." default:""`
	Start  string `help:"Range start (YYYY-MM-DD); requires --end." default:""`
	End    string `help:"Range end (YYYY-MM-DD); requires --start." default:""`
}

func (c *LogListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ref, err := ResolveReferenceDate("")
	if err != nil {
		return err
	}

	startDay, endDay, hasRange, err := ResolveRange(c.Preset, c.Start, c.End, ref)
	if err != nil {
		return err
	}

	var habitID string
	if c.Habit != "" {
		habit, err := ctx.Store.GetHabitByName(c.Habit)
		if err != nil {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		habitID = habit.ID
	}

	var events []models.CompletionEvent
	switch {
	case habitID != "" && hasRange:
		events, err = ctx.Store.GetEventsForHabit(habitID, startDay, endDay)
	case habitID != "":
		events, err = ctx.Store.GetAllEventsForHabit(habitID)
	case hasRange:
		events, err = ctx.Store.GetEventsInRange(startDay, endDay)
	default:
		events, err = ctx.Store.GetAllEvents()
	}
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No completions found.")
		return nil
	}

	names, err := habitNames(ctx)
	if err != nil {
		return err
	}

	for _, e := range events {
		name := names[e.HabitID]
		if name == "" {
			name = e.HabitID
		}
		line := fmt.Sprintf("%s  %-20s %4d min", e.Day, name, e.DurationMinutes)
		if e.Note != "" {
			line += "  (" + e.Note + ")"
		}
		fmt.Printf("%s  [%s]\n", line, e.ID)
	}

	return nil
}

// habitNames maps habit IDs to display names, including archived and
// deleted habits so old log lines stay readable.
func habitNames(ctx *Context) (map[string]string, error) {
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(habits))
	for _, h := range habits {
		names[h.ID] = h.Name
	}
	return names, nil
}

type LogDeleteCmd struct {
	ID string `arg:"" help:"Completion event ID (shown by 'log list')."`
}

func (c *LogDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeleteEvent(c.ID); err != nil {
		return err
	}

	fmt.Println("Deleted completion event.")
	return nil
}
