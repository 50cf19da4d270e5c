package views

import (
	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/engine"
	"github.com/julianstephens/smokefree/internal/utils"
)

type HealthCmd struct{}

func (c *HealthCmd) Run(ctx *cli.Context) error {
	milestones, hours, err := ctx.Tracker.Health()
	if err != nil {
		return err
	}

	ctx.Printf("🫁 Health recovery (%s since your last cigarette)\n\n", utils.FormatStreak(int(hours)))
	for _, m := range milestones {
		switch m.State {
		case engine.MilestoneCompleted:
			ctx.Printf("  ✓ %-10s %s\n", m.Label, m.Description)
		case engine.MilestoneNext:
			ctx.Printf("  → %-10s %s (%s)\n", m.Label, m.Description, utils.FormatPercent(m.Progress))
		default:
			ctx.Printf("  · %-10s %s\n", m.Label, m.Description)
		}
	}
	ctx.Printf("\n%d of %d milestones reached\n", engine.CompletedMilestones(hours), len(milestones))
	return nil
}
