package engine

import (
	"sort"
	"time"

	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/models"
)

// DailyCount is one point of the rolling series.
type DailyCount struct {
	Date      time.Time
	SlipUps   int
	Conquests int
}

// LocationCount is one row of the trigger breakdown.
type LocationCount struct {
	Location string
	Count    int
}

// StrengthCount is one bucket of the craving-strength distribution.
type StrengthCount struct {
	Strength int
	Count    int
}

// Statistics is the statistics view.
type Statistics struct {
	Daily               []DailyCount
	AverageDailySlipUps float64
	ReductionRate       float64
	Locations           []LocationCount
	CravingStrengths    []StrengthCount
	DaysSinceQuit       int
	CigarettesAvoided   int
	MoneySaved          float64
	TotalSlipUps        int
	TotalConquests      int
	QuitPoints          int
}

// ComputeRollingStatistics builds the trailing 30-day series plus the all-time
// breakdowns. Days before the quit date are left out of the series.
func ComputeRollingStatistics(profile models.Profile, slipUps []models.SlipUp, conquests []models.Conquest, now time.Time) Statistics {
	elapsed := ComputeElapsed(profile, slipUps, now)
	savings := ComputeSavings(profile, elapsed.DaysSinceQuit, len(slipUps))

	st := Statistics{
		Daily:             rollingSeries(profile, slipUps, conquests, now),
		Locations:         locationBreakdown(slipUps),
		CravingStrengths:  strengthDistribution(slipUps),
		DaysSinceQuit:     elapsed.DaysSinceQuit,
		CigarettesAvoided: savings.CigarettesAvoided,
		MoneySaved:        savings.MoneySaved,
		TotalSlipUps:      len(slipUps),
		TotalConquests:    len(conquests),
		QuitPoints:        models.TotalPoints(conquests),
	}

	if elapsed.DaysSinceQuit > 0 {
		st.AverageDailySlipUps = float64(len(slipUps)) / float64(elapsed.DaysSinceQuit)
	}
	if profile.DailyCigarettes > 0 {
		daily := float64(profile.DailyCigarettes)
		st.ReductionRate = (daily - st.AverageDailySlipUps) / daily * 100
	}
	return st
}

func rollingSeries(profile models.Profile, slipUps []models.SlipUp, conquests []models.Conquest, now time.Time) []DailyCount {
	loc := now.Location()
	today := startOfDay(now, loc)
	quitDay := quitDayOrToday(profile, now)
	slips := slipUpsByDay(slipUps, loc)
	wins := conquestsByDay(conquests, loc)

	series := make([]DailyCount, 0, constants.RollingWindowDays)
	for i := constants.RollingWindowDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		if date.Before(quitDay) {
			continue
		}
		key := keyOf(date, loc)
		series = append(series, DailyCount{
			Date:      date,
			SlipUps:   slips[key],
			Conquests: wins[key],
		})
	}
	return series
}

func locationBreakdown(slipUps []models.SlipUp) []LocationCount {
	counts := make(map[string]int)
	for _, s := range slipUps {
		loc := s.Location
		if !s.HasLocation() {
			loc = constants.UnspecifiedLocation
		}
		counts[loc]++
	}

	out := make([]LocationCount, 0, len(counts))
	for loc, n := range counts {
		out = append(out, LocationCount{Location: loc, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Location < out[j].Location
	})
	if len(out) > constants.TopLocations {
		out = out[:constants.TopLocations]
	}
	return out
}

func strengthDistribution(slipUps []models.SlipUp) []StrengthCount {
	out := make([]StrengthCount, 0, constants.MaxCravingStrength-constants.MinCravingStrength+1)
	for s := constants.MinCravingStrength; s <= constants.MaxCravingStrength; s++ {
		out = append(out, StrengthCount{Strength: s})
	}
	for _, s := range slipUps {
		if s.CravingStrength < constants.MinCravingStrength || s.CravingStrength > constants.MaxCravingStrength {
			continue
		}
		out[s.CravingStrength-constants.MinCravingStrength].Count++
	}
	return out
}
