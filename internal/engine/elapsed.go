// Package engine derives every progress metric from a profile, the slip-up and
// conquest logs, and a caller-supplied instant. Functions here hold no state and
// never read the clock; the caller samples "now" once and passes it to every call
// made for the same view so the numbers cannot disagree.
package engine

import (
	"time"

	"github.com/julianstephens/smokefree/internal/models"
)

// Elapsed is the time-based part of the derived metrics.
type Elapsed struct {
	QuitDay                   time.Time
	LastSlipUp                time.Time
	DaysSinceQuit             int
	HoursSinceLastSlipUp      int
	DaysSinceLastSlipUp       int
	ExactHoursSinceLastSlipUp float64
}

// ComputeElapsed measures time since the quit date and since the latest slip-up.
// The quit date is read as local midnight in now's location and DaysSinceQuit
// counts calendar dates, so it agrees with the calendar view. When the quit date
// lies in the future, or a slip-up is stamped after now, the counts are clamped
// to zero rather than going negative.
func ComputeElapsed(profile models.Profile, slipUps []models.SlipUp, now time.Time) Elapsed {
	quitDay := quitDayOrToday(profile, now)

	last := quitDay
	if latest, ok := LatestSlipUp(slipUps); ok {
		last = latest
	}

	sinceLast := now.Sub(last)
	if sinceLast < 0 {
		sinceLast = 0
	}
	hours := int(sinceLast / time.Hour)

	return Elapsed{
		QuitDay:                   quitDay,
		LastSlipUp:                last,
		DaysSinceQuit:             max(0, calendarDaysBetween(quitDay, now)),
		HoursSinceLastSlipUp:      hours,
		DaysSinceLastSlipUp:       hours / 24,
		ExactHoursSinceLastSlipUp: sinceLast.Hours(),
	}
}

// LatestSlipUp returns the most recent slip-up timestamp. The log order is not
// trusted; the maximum timestamp wins.
func LatestSlipUp(slipUps []models.SlipUp) (time.Time, bool) {
	if len(slipUps) == 0 {
		return time.Time{}, false
	}
	latest := slipUps[0].Timestamp
	for _, s := range slipUps[1:] {
		if s.Timestamp.After(latest) {
			latest = s.Timestamp
		}
	}
	return latest, true
}
