package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// First run lands in the onboarding form.
	if err := ctx.InitAndLoad(); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Tracker, ctx.Config.Display), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
