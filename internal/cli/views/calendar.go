package views

import (
	"fmt"
	"strings"

	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/engine"
	"github.com/julianstephens/smokefree/internal/utils"
)

type CalendarCmd struct {
	Month string `help:"Month to show (YYYY-MM). Defaults to the current month." short:"m"`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	year, month, err := utils.ParseMonth(c.Month, ctx.Tracker.Now())
	if err != nil {
		return err
	}
	cal, err := ctx.Tracker.Calendar(year, month)
	if err != nil {
		return err
	}
	ctx.Printf("%s", RenderCalendar(cal))
	return nil
}

func dayMarker(d engine.CalendarDay) string {
	switch {
	case d.IsFuture || !d.IsAfterQuit:
		return " "
	case d.Category == engine.DayLapsed:
		return "✗"
	default:
		return "✓"
	}
}

// RenderCalendar draws a Sunday-first month grid with a clean/lapsed marker
// after each day number, followed by the month's totals.
func RenderCalendar(cal engine.CalendarMonth) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", cal.Month, cal.Year)
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	col := 0
	for i := 0; i < cal.LeadingBlanks; i++ {
		b.WriteString("    ")
		col++
	}
	for _, d := range cal.Days {
		today := " "
		if d.IsToday {
			today = "*"
		}
		fmt.Fprintf(&b, "%s%2d%s", today, d.Date.Day(), dayMarker(d))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n✓ clean  ✗ slip-up  * today\n")
	fmt.Fprintf(&b, "Tracked %d days: %d clean, %d with slip-ups (%s success)\n",
		cal.DaysTracked, cal.CleanDays, cal.LapsedDays, utils.FormatPercent(cal.SuccessRate))
	return b.String()
}
