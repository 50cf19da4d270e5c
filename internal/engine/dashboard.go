package engine

import (
	"time"

	"github.com/julianstephens/smokefree/internal/models"
)

// DashboardMetrics is everything the home view shows.
type DashboardMetrics struct {
	DaysSinceQuit     int
	StreakDays        int
	StreakHours       int
	Level             Level
	LevelProgress     float64
	CigarettesAvoided int
	MoneySaved        float64
	QuitPoints        int
	ConquestCount     int
	SlipUpCount       int
	LastSlipUp        time.Time
}

// ComputeDashboardMetrics derives the dashboard from a single elapsed-time and
// savings pass so every figure agrees on now.
func ComputeDashboardMetrics(profile models.Profile, slipUps []models.SlipUp, conquests []models.Conquest, now time.Time) DashboardMetrics {
	elapsed := ComputeElapsed(profile, slipUps, now)
	savings := ComputeSavings(profile, elapsed.DaysSinceQuit, len(slipUps))
	level, progress := ClassifyLevel(elapsed.DaysSinceLastSlipUp, elapsed.HoursSinceLastSlipUp)

	return DashboardMetrics{
		DaysSinceQuit:     elapsed.DaysSinceQuit,
		StreakDays:        elapsed.DaysSinceLastSlipUp,
		StreakHours:       elapsed.HoursSinceLastSlipUp,
		Level:             level,
		LevelProgress:     progress,
		CigarettesAvoided: savings.CigarettesAvoided,
		MoneySaved:        savings.MoneySaved,
		QuitPoints:        models.TotalPoints(conquests),
		ConquestCount:     len(conquests),
		SlipUpCount:       len(slipUps),
		LastSlipUp:        elapsed.LastSlipUp,
	}
}
