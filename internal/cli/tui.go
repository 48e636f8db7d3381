package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jurgenbaeza/habit-tracker/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
