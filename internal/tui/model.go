package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/huh"

	"github.com/jurgenbaeza/habit-tracker/internal/analyzer"
	"github.com/jurgenbaeza/habit-tracker/internal/constants"
	"github.com/jurgenbaeza/habit-tracker/internal/models"
	"github.com/jurgenbaeza/habit-tracker/internal/storage"
)

type SessionState int

const (
	StateList SessionState = iota
	StateAddHabit
	StateLogCompletion
	StateConfirmDelete
)

type HabitFormModel struct {
	Name        string
	Description string
	Cadence     string
}

type LogFormModel struct {
	Duration string
	Note     string
}

// Item is one dashboard row: a habit plus its derived summary numbers.
type Item struct {
	Habit       models.Habit
	DoneToday   bool
	Streak      analyzer.StreakResult
	WeekMinutes int
}

func (i Item) Title() string {
	if i.Habit.ArchivedAt != nil {
		return "[ARCHIVED] " + i.Habit.Name
	}
	if i.DoneToday {
		return "✓ " + i.Habit.Name
	}
	return "○ " + i.Habit.Name
}

func (i Item) Description() string {
	if i.Habit.ArchivedAt != nil {
		return "archived"
	}
	desc := fmt.Sprintf("%d-day streak · %d min this week", i.Streak.Current, i.WeekMinutes)
	if i.Streak.Longest > i.Streak.Current {
		desc += fmt.Sprintf(" · best %d", i.Streak.Longest)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type Model struct {
	store         storage.Provider
	state         SessionState
	keys          KeyMap
	help          help.Model
	list          list.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	logForm       *LogFormModel
	targetHabit   models.Habit
	statusMsg     string
	quitting      bool
	width         int
	height        int
	referenceDate time.Time
}

func NewModel(store storage.Provider) Model {
	now := time.Now()
	ref := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	items, err := loadItems(store, ref)
	statusMsg := ""
	if err != nil {
		statusMsg = fmt.Sprintf("failed to load habits: %v", err)
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Habits"
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)

	return Model{
		store:         store,
		state:         StateList,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		list:          l,
		statusMsg:     statusMsg,
		referenceDate: ref,
	}
}

// loadItems builds the dashboard rows: one item per non-deleted habit with
// its streaks and current-week minutes as of the reference date.
func loadItems(store storage.Provider, referenceDate time.Time) ([]list.Item, error) {
	habits, err := store.GetAllHabits(true, false)
	if err != nil {
		return nil, err
	}

	refDay := referenceDate.Format(constants.DateFormat)
	items := make([]list.Item, 0, len(habits))
	for _, h := range habits {
		events, err := store.GetAllEventsForHabit(h.ID)
		if err != nil {
			return nil, err
		}

		doneToday := false
		for _, e := range events {
			if e.Day == refDay {
				doneToday = true
				break
			}
		}

		items = append(items, Item{
			Habit:       h,
			DoneToday:   doneToday,
			Streak:      analyzer.Streaks(events, referenceDate),
			WeekMinutes: analyzer.WeeklyTotals(events, referenceDate).TotalMinutes,
		})
	}

	return items, nil
}

func (m *Model) reload() {
	items, err := loadItems(m.store, m.referenceDate)
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to reload habits: %v", err)
		return
	}
	m.list.SetItems(items)
}

func (m *Model) selectedItem() (Item, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item, ok
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name),
			huh.NewInput().
				Title("Description").
				Value(&f.Description),
			huh.NewSelect[string]().
				Title("Cadence").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Monthly", "monthly"),
				).
				Value(&f.Cadence),
		),
	)
}

func newLogForm(f *LogFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Duration").
				Description("e.g. '30 min', '2 hours', '1:30' or plain minutes").
				Value(&f.Duration),
			huh.NewInput().
				Title("Note").
				Value(&f.Note),
		),
	)
}
