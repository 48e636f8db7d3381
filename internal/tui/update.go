package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/jurgenbaeza/habit-tracker/internal/constants"
	"github.com/jurgenbaeza/habit-tracker/internal/duration"
	"github.com/jurgenbaeza/habit-tracker/internal/models"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil
	}

	switch m.state {
	case StateList:
		return m.updateList(msg)
	case StateAddHabit, StateLogCompletion:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.list.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.Add):
			m.habitForm = &HabitFormModel{Cadence: "daily"}
			m.form = newHabitForm(m.habitForm)
			m.state = StateAddHabit
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Mark):
			item, ok := m.selectedItem()
			if !ok {
				return m, nil
			}
			if item.Habit.ArchivedAt != nil {
				m.statusMsg = "cannot log a completion for an archived habit"
				return m, nil
			}
			m.targetHabit = item.Habit
			m.logForm = &LogFormModel{}
			m.form = newLogForm(m.logForm)
			m.state = StateLogCompletion
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Archive):
			item, ok := m.selectedItem()
			if !ok {
				return m, nil
			}
			m.toggleArchive(item.Habit)
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			item, ok := m.selectedItem()
			if !ok {
				return m, nil
			}
			m.targetHabit = item.Habit
			m.state = StateConfirmDelete
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		m.state = StateList
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateAborted {
		m.state = StateList
		m.form = nil
		return m, nil
	}

	if m.form.State == huh.StateCompleted {
		switch m.state {
		case StateAddHabit:
			m.submitHabitForm()
		case StateLogCompletion:
			m.submitLogForm()
		}
		m.state = StateList
		m.form = nil
		m.reload()
		return m, nil
	}

	return m, cmd
}

func (m *Model) submitHabitForm() {
	name := strings.TrimSpace(m.habitForm.Name)
	if name == "" {
		m.statusMsg = "habit name cannot be empty"
		return
	}
	if _, err := m.store.GetHabitByName(name); err == nil {
		m.statusMsg = fmt.Sprintf("habit %q already exists", name)
		return
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(m.habitForm.Description),
		Cadence:     models.Cadence(m.habitForm.Cadence),
		CreatedAt:   time.Now(),
	}
	if err := m.store.AddHabit(habit); err != nil {
		m.statusMsg = fmt.Sprintf("failed to add habit: %v", err)
		return
	}
	m.statusMsg = fmt.Sprintf("added habit %q", name)
}

func (m *Model) submitLogForm() {
	text := strings.TrimSpace(m.logForm.Duration)
	minutes := 0
	if text != "" {
		var err error
		minutes, err = duration.ParsePositive(text)
		if err != nil {
			m.statusMsg = fmt.Sprintf("invalid duration %q: %v", text, err)
			return
		}
	}

	now := time.Now()
	event := models.CompletionEvent{
		ID:              uuid.New().String(),
		HabitID:         m.targetHabit.ID,
		Day:             now.Format(constants.DateFormat),
		Note:            strings.TrimSpace(m.logForm.Note),
		DurationText:    text,
		DurationMinutes: minutes,
		OccurredAt:      now,
		CreatedAt:       now,
	}
	if err := m.store.AddEvent(event); err != nil {
		m.statusMsg = fmt.Sprintf("failed to log completion: %v", err)
		return
	}
	m.statusMsg = fmt.Sprintf("logged %q (%d min)", m.targetHabit.Name, minutes)
}

func (m *Model) toggleArchive(habit models.Habit) {
	var err error
	if habit.ArchivedAt != nil {
		err = m.store.UnarchiveHabit(habit.ID)
	} else {
		err = m.store.ArchiveHabit(habit.ID)
	}
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to update %q: %v", habit.Name, err)
		return
	}
	m.statusMsg = fmt.Sprintf("updated %q", habit.Name)
	m.reload()
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.store.DeleteHabit(m.targetHabit.ID); err != nil {
				m.statusMsg = fmt.Sprintf("failed to delete %q: %v", m.targetHabit.Name, err)
			} else {
				m.statusMsg = fmt.Sprintf("deleted %q", m.targetHabit.Name)
			}
			m.state = StateList
			m.reload()
			return m, nil
		case "n", "N", "esc", "q":
			m.state = StateList
			return m, nil
		}
	}
	return m, nil
}
