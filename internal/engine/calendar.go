package engine

import (
	"time"

	"github.com/julianstephens/smokefree/internal/models"
)

// DayCategory is the visual classification of a calendar day.
type DayCategory string

const (
	DayClean   DayCategory = "clean"
	DayLapsed  DayCategory = "lapsed"
	DayNeutral DayCategory = "neutral"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date        time.Time
	IsAfterQuit bool
	IsFuture    bool
	IsToday     bool
	SlipUps     int
	Category    DayCategory
}

// CalendarMonth is a classified month plus its aggregates.
type CalendarMonth struct {
	Year          int
	Month         time.Month
	LeadingBlanks int // weekday of the 1st, Sunday = 0
	Days          []CalendarDay
	DaysTracked   int
	CleanDays     int
	LapsedDays    int
	SuccessRate   float64
}

// ClassifyCalendarMonth classifies every day of the month. All comparisons are
// date-only in today's location: a day counts once it is on or after the quit
// date and not after today.
func ClassifyCalendarMonth(profile models.Profile, slipUps []models.SlipUp, year int, month time.Month, today time.Time) CalendarMonth {
	loc := today.Location()
	todayStart := startOfDay(today, loc)
	quitDay := quitDayOrToday(profile, today)
	counts := slipUpsByDay(slipUps, loc)

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cm := CalendarMonth{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]CalendarDay, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		day := CalendarDay{
			Date:        date,
			IsAfterQuit: !date.Before(quitDay),
			IsFuture:    date.After(todayStart),
			IsToday:     date.Equal(todayStart),
			SlipUps:     counts[keyOf(date, loc)],
		}

		switch {
		case !day.IsAfterQuit || day.IsFuture:
			day.Category = DayNeutral
		case day.SlipUps > 0:
			day.Category = DayLapsed
			cm.DaysTracked++
			cm.LapsedDays++
		default:
			day.Category = DayClean
			cm.DaysTracked++
			cm.CleanDays++
		}
		cm.Days = append(cm.Days, day)
	}

	if cm.DaysTracked > 0 {
		cm.SuccessRate = float64(cm.CleanDays) / float64(cm.DaysTracked) * 100
	}
	return cm
}
