package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddHabit:
		return docStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			formTitleStyle.Render("New habit"),
			m.form.View(),
		))
	case StateLogCompletion:
		return docStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			formTitleStyle.Render(fmt.Sprintf("Log completion for %q", m.targetHabit.Name)),
			m.form.View(),
		))
	case StateConfirmDelete:
		return docStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			dangerStyle.Render(fmt.Sprintf("Delete habit %q?", m.targetHabit.Name)),
			"",
			statusStyle.Render("its completion log is kept and the habit can be restored (y/n)"),
		))
	}

	sections := []string{m.list.View()}
	if m.statusMsg != "" {
		sections = append(sections, statusStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
