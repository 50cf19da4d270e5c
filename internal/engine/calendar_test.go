package engine

import (
	"testing"
	"time"

	"github.com/julianstephens/smokefree/internal/models"
)

func TestClassifyCalendarMonth(t *testing.T) {
	profile := models.Profile{QuitDate: "2026-03-05", DailyCigarettes: 10, CostPerPack: 10, CigarettesPerPack: 20}
	slipUps := []models.SlipUp{
		{Timestamp: time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)},
		{Timestamp: time.Date(2026, time.March, 7, 21, 30, 0, 0, time.UTC)},
		{Timestamp: time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)},
		{Timestamp: time.Date(2026, time.February, 10, 8, 0, 0, 0, time.UTC)},
	}

	cm := ClassifyCalendarMonth(profile, slipUps, 2026, time.March, testNow)

	if len(cm.Days) != 31 {
		t.Fatalf("len(Days) = %d, want 31", len(cm.Days))
	}
	if cm.LeadingBlanks != 0 {
		t.Errorf("LeadingBlanks = %d, want 0 (March 1 2026 is a Sunday)", cm.LeadingBlanks)
	}
	if cm.DaysTracked != 11 {
		t.Errorf("DaysTracked = %d, want 11", cm.DaysTracked)
	}
	if cm.LapsedDays != 2 || cm.CleanDays != 9 {
		t.Errorf("LapsedDays = %d, CleanDays = %d, want 2 and 9", cm.LapsedDays, cm.CleanDays)
	}
	if !approxEqual(cm.SuccessRate, 9.0/11*100) {
		t.Errorf("SuccessRate = %v", cm.SuccessRate)
	}

	checks := []struct {
		day      int
		category DayCategory
		slipUps  int
	}{
		{4, DayNeutral, 0},
		{5, DayClean, 0},
		{7, DayLapsed, 2},
		{10, DayLapsed, 1},
		{15, DayClean, 0},
		{16, DayNeutral, 0},
	}
	for _, c := range checks {
		got := cm.Days[c.day-1]
		if got.Category != c.category || got.SlipUps != c.slipUps {
			t.Errorf("March %d = %s/%d, want %s/%d", c.day, got.Category, got.SlipUps, c.category, c.slipUps)
		}
	}
	if !cm.Days[14].IsToday || cm.Days[13].IsToday {
		t.Error("IsToday should be set only on March 15")
	}
	if !cm.Days[15].IsFuture {
		t.Error("March 16 should be in the future")
	}
}

func TestClassifyCalendarMonthBeforeQuit(t *testing.T) {
	profile := models.Profile{QuitDate: "2026-03-05"}
	cm := ClassifyCalendarMonth(profile, nil, 2026, time.February, testNow)
	if cm.DaysTracked != 0 || cm.SuccessRate != 0 {
		t.Errorf("DaysTracked = %d, SuccessRate = %v, want 0 and 0", cm.DaysTracked, cm.SuccessRate)
	}
	if len(cm.Days) != 28 {
		t.Errorf("len(Days) = %d, want 28", len(cm.Days))
	}
}

func TestClassifyCalendarMonthPartition(t *testing.T) {
	profile := models.Profile{QuitDate: "2025-11-20"}
	var slipUps []models.SlipUp
	for i := 0; i < 40; i += 3 {
		slipUps = append(slipUps, models.SlipUp{Timestamp: testNow.AddDate(0, 0, -i)})
	}

	for _, m := range []time.Month{time.October, time.November, time.December} {
		checkPartition(t, ClassifyCalendarMonth(profile, slipUps, 2025, m, testNow))
	}
	for _, m := range []time.Month{time.January, time.February, time.March, time.April} {
		checkPartition(t, ClassifyCalendarMonth(profile, slipUps, 2026, m, testNow))
	}
}

func checkPartition(t *testing.T, cm CalendarMonth) {
	t.Helper()
	clean, lapsed, neutral := 0, 0, 0
	for _, d := range cm.Days {
		switch d.Category {
		case DayClean:
			clean++
		case DayLapsed:
			lapsed++
		case DayNeutral:
			neutral++
		default:
			t.Errorf("%s has category %q", d.Date.Format("2006-01-02"), d.Category)
		}
	}
	if clean+lapsed+neutral != len(cm.Days) {
		t.Errorf("%s %d: categories do not cover every day", cm.Month, cm.Year)
	}
	if cm.CleanDays+cm.LapsedDays != cm.DaysTracked {
		t.Errorf("%s %d: clean %d + lapsed %d != tracked %d", cm.Month, cm.Year, cm.CleanDays, cm.LapsedDays, cm.DaysTracked)
	}
	if clean != cm.CleanDays || lapsed != cm.LapsedDays {
		t.Errorf("%s %d: aggregates disagree with days", cm.Month, cm.Year)
	}
}
