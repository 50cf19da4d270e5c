package views

import (
	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/engine"
	"github.com/julianstephens/smokefree/internal/utils"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *cli.Context) error {
	v, err := ctx.Tracker.Snapshot()
	if err != nil {
		return err
	}
	d := v.Dashboard
	currency := ctx.Config.Display.Currency

	ctx.Printf("🚭 Smoke-free for %s days (since %s)\n\n", utils.FormatCount(d.DaysSinceQuit), v.Profile.QuitDate)
	ctx.Printf("  %-20s %s\n", "Current streak", utils.FormatStreak(d.StreakHours))
	if next := engine.NextLevel(d.Level); next != "" {
		ctx.Printf("  %-20s %s (%s to %s)\n", "Level", d.Level, utils.FormatPercent(d.LevelProgress), next)
	} else {
		ctx.Printf("  %-20s %s\n", "Level", d.Level)
	}
	ctx.Printf("  %-20s %s\n", "Cigarettes avoided", utils.FormatCount(d.CigarettesAvoided))
	ctx.Printf("  %-20s %s\n", "Money saved", utils.FormatMoney(currency, d.MoneySaved))
	ctx.Printf("  %-20s %s (%s cravings conquered)\n", "Quit points", utils.FormatCount(d.QuitPoints), utils.FormatCount(d.ConquestCount))
	ctx.Printf("  %-20s %s\n", "Slip-ups", utils.FormatCount(d.SlipUpCount))
	if d.SlipUpCount > 0 {
		ctx.Printf("  %-20s %s\n", "Last slip-up", utils.FormatSince(d.LastSlipUp, v.Now))
	}

	if next, ok := engine.NextMilestone(v.Elapsed.ExactHoursSinceLastSlipUp); ok {
		ctx.Printf("\n  Next health milestone: %s, %s (%s)\n", next.Label, next.Description, utils.FormatPercent(next.Progress))
	}
	return nil
}
