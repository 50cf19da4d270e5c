package engine

import (
	"time"

	"github.com/julianstephens/smokefree/internal/models"
)

// startOfDay truncates t to local midnight in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time, loc *time.Location) dayKey {
	t = t.In(loc)
	return dayKey{year: t.Year(), month: t.Month(), day: t.Day()}
}

func slipUpsByDay(slipUps []models.SlipUp, loc *time.Location) map[dayKey]int {
	counts := make(map[dayKey]int, len(slipUps))
	for _, s := range slipUps {
		counts[keyOf(s.Timestamp, loc)]++
	}
	return counts
}

func conquestsByDay(conquests []models.Conquest, loc *time.Location) map[dayKey]int {
	counts := make(map[dayKey]int, len(conquests))
	for _, c := range conquests {
		counts[keyOf(c.Timestamp, loc)]++
	}
	return counts
}

// quitDayOrToday returns the quit date at local midnight in now's location.
// An unparsable quit date counts from the start of today, so every view
// agrees on when tracking began.
func quitDayOrToday(profile models.Profile, now time.Time) time.Time {
	quitDay, err := profile.QuitDay(now.Location())
	if err != nil {
		return startOfDay(now, now.Location())
	}
	return quitDay
}

// calendarDaysBetween counts date boundaries from from to to, ignoring the
// wall-clock length of each day. Across a DST change a day can last 23 or 25
// hours; it still counts as one.
func calendarDaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
