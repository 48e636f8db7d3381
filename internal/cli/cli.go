package cli

import (
	"fmt"
	"time"

	"github.com/jurgenbaeza/habit-tracker/internal/analyzer"
	"github.com/jurgenbaeza/habit-tracker/internal/constants"
	"github.com/jurgenbaeza/habit-tracker/internal/models"
	"github.com/jurgenbaeza/habit-tracker/internal/storage"
	"github.com/jurgenbaeza/habit-tracker/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// ResolveReferenceDate turns an optional --date flag value into the
// reference date for summaries. An empty value means today in the local
// timezone.
func ResolveReferenceDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	return utils.ParseDate(dateStr)
}

// ResolveRange converts a preset name or an explicit start/end pair into an
// inclusive day range. Returns hasRange=false when no filtering was
// requested.
func ResolveRange(preset, start, end string, referenceDate time.Time) (startDay, endDay string, hasRange bool, err error) {
	refDay := referenceDate.Format(constants.DateFormat)

	switch {
	case preset != "" && (start != "" || end != ""):
		return "", "", false, fmt.Errorf("preset and start/end cannot be combined")
	case preset == constants.PresetToday:
		return refDay, refDay, true, nil
	case preset == constants.PresetThisWeek:
		return analyzer.WeekStart(referenceDate).Format(constants.DateFormat), refDay, true, nil
	case preset != "":
		return "", "", false, fmt.Errorf("unknown preset %q (expected %s or %s)", preset, constants.PresetToday, constants.PresetThisWeek)
	case start == "" && end == "":
		return "", "", false, nil
	case start == "" || end == "":
		return "", "", false, fmt.Errorf("start and end are required together (YYYY-MM-DD)")
	case !utils.ValidateDate(start) || !utils.ValidateDate(end):
		return "", "", false, fmt.Errorf("dates must be YYYY-MM-DD")
	case start > end:
		return "", "", false, fmt.Errorf("start must not be after end")
	default:
		return start, end, true, nil
	}
}

// fetchEvents loads the analyzer's event snapshot, optionally filtered to a
// single habit by name.
func fetchEvents(ctx *Context, habitName string) ([]models.CompletionEvent, error) {
	if habitName == "" {
		return ctx.Store.GetAllEvents()
	}
	habit, err := ctx.Store.GetHabitByName(habitName)
	if err != nil {
		return nil, fmt.Errorf("habit %q not found", habitName)
	}
	return ctx.Store.GetAllEventsForHabit(habit.ID)
}
