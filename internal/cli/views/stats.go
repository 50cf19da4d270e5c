package views

import (
	"strings"

	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/utils"
)

type StatsCmd struct {
	Days bool `help:"Print the per-day series for the last 30 days."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	st, err := ctx.Tracker.Statistics()
	if err != nil {
		return err
	}
	currency := ctx.Config.Display.Currency

	ctx.Println("📊 Statistics")
	ctx.Println()
	ctx.Printf("  %-24s %s\n", "Days since quit", utils.FormatCount(st.DaysSinceQuit))
	ctx.Printf("  %-24s %s\n", "Cigarettes avoided", utils.FormatCount(st.CigarettesAvoided))
	ctx.Printf("  %-24s %s\n", "Money saved", utils.FormatMoney(currency, st.MoneySaved))
	ctx.Printf("  %-24s %s\n", "Slip-ups", utils.FormatCount(st.TotalSlipUps))
	ctx.Printf("  %-24s %s (%s points)\n", "Cravings conquered", utils.FormatCount(st.TotalConquests), utils.FormatCount(st.QuitPoints))
	ctx.Printf("  %-24s %.2f\n", "Average slip-ups per day", st.AverageDailySlipUps)
	ctx.Printf("  %-24s %s\n", "Reduction from baseline", utils.FormatPercent(st.ReductionRate))

	if c.Days {
		ctx.Println()
		ctx.Println("  Date         Slip-ups  Conquests")
		for _, d := range st.Daily {
			ctx.Printf("  %s  %8d  %9d\n", d.Date.Format("2006-01-02"), d.SlipUps, d.Conquests)
		}
	}

	if len(st.Locations) > 0 {
		ctx.Println()
		ctx.Println("  Top slip-up locations")
		for _, l := range st.Locations {
			ctx.Printf("    %-16s %3d %s\n", l.Location, l.Count, bar(l.Count))
		}
	}

	if st.TotalSlipUps > 0 {
		ctx.Println()
		ctx.Println("  Craving strength")
		for _, s := range st.CravingStrengths {
			ctx.Printf("    %d  %3d %s\n", s.Strength, s.Count, bar(s.Count))
		}
	}
	return nil
}

func bar(n int) string {
	if n > 40 {
		n = 40
	}
	return strings.Repeat("█", n)
}
