package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jurgenbaeza/habit-tracker/internal/analyzer"
	"github.com/jurgenbaeza/habit-tracker/internal/models"
	"github.com/jurgenbaeza/habit-tracker/internal/utils"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Archive   HabitArchiveCmd   `cmd:"" help:"Archive a habit."`
	Unarchive HabitUnarchiveCmd `cmd:"" help:"Unarchive a habit."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Delete a habit (soft delete)."`
	Restore   HabitRestoreCmd   `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." default:""`
	Cadence     string `help:"Cadence: daily, weekly or monthly." default:"daily" enum:"daily,weekly,monthly"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Check if habit with same name already exists
	_, err := ctx.Store.GetHabitByName(c.Name)
	if err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        c.Name,
		Description: c.Description,
		Cadence:     models.Cadence(c.Cadence),
		CreatedAt:   time.Now(),
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := utils.Today()
	for _, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		} else if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		} else {
			events, err := ctx.Store.GetEventsForHabit(habit.ID, today, today)
			if err != nil {
				return err
			}
			if len(events) > 0 {
				status = " ✓"
			}
			streaks, err := currentStreakFor(ctx, habit.ID)
			if err != nil {
				return err
			}
			if streaks.Current > 0 {
				status += fmt.Sprintf(" (%d-day streak)", streaks.Current)
			}
		}
		fmt.Printf("%s (%s)%s\n", habit.Name, habit.Cadence, status)
	}

	return nil
}

type HabitArchiveCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Archived habit: %s\n", c.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitUnarchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return err
	}

	for _, habit := range habits {
		if habit.Name == c.Name {
			if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
				return err
			}
			fmt.Printf("Unarchived habit: %s\n", c.Name)
			return nil
		}
	}

	return fmt.Errorf("habit %q not found", c.Name)
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}

	for _, habit := range habits {
		if habit.Name == c.Name && habit.DeletedAt != nil {
			if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
				return err
			}
			fmt.Printf("Restored habit: %s\n", c.Name)
			return nil
		}
	}

	return fmt.Errorf("no deleted habit named %q", c.Name)
}

// currentStreakFor computes the streaks for one habit as of today.
func currentStreakFor(ctx *Context, habitID string) (analyzer.StreakResult, error) {
	events, err := ctx.Store.GetAllEventsForHabit(habitID)
	if err != nil {
		return analyzer.StreakResult{}, err
	}
	ref, err := ResolveReferenceDate("")
	if err != nil {
		return analyzer.StreakResult{}, err
	}
	return analyzer.Streaks(events, ref), nil
}
