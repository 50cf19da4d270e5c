package engine

import (
	"math"
	"testing"
	"time"

	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/models"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func profileQuitDaysAgo(days int) models.Profile {
	return models.Profile{
		QuitDate:          testNow.AddDate(0, 0, -days).Format(constants.DateFormat),
		DailyCigarettes:   10,
		CostPerPack:       200,
		CigarettesPerPack: 20,
		MyWhy:             "my kids",
		SetupComplete:     true,
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func findAchievement(t *testing.T, achievements []models.Achievement, id string) models.Achievement {
	t.Helper()
	for _, a := range achievements {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %q not found", id)
	return models.Achievement{}
}

func TestComputeElapsed(t *testing.T) {
	tests := []struct {
		name      string
		profile   models.Profile
		slipUps   []models.SlipUp
		wantDays  int
		wantHours int
	}{
		{
			name:      "no slip-ups falls back to quit date",
			profile:   profileQuitDaysAgo(10),
			wantDays:  10,
			wantHours: 10*24 + 12,
		},
		{
			name:    "latest slip-up wins regardless of order",
			profile: profileQuitDaysAgo(10),
			slipUps: []models.SlipUp{
				{Timestamp: testNow.Add(-3 * time.Hour)},
				{Timestamp: testNow.Add(-50 * time.Hour)},
			},
			wantDays:  10,
			wantHours: 3,
		},
		{
			name:      "future quit date is clamped",
			profile:   profileQuitDaysAgo(-5),
			wantDays:  0,
			wantHours: 0,
		},
		{
			name:      "unparsable quit date counts from today",
			profile:   models.Profile{QuitDate: "not-a-date"},
			wantDays:  0,
			wantHours: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeElapsed(tt.profile, tt.slipUps, testNow)
			if got.DaysSinceQuit != tt.wantDays {
				t.Errorf("DaysSinceQuit = %d, want %d", got.DaysSinceQuit, tt.wantDays)
			}
			if got.HoursSinceLastSlipUp != tt.wantHours {
				t.Errorf("HoursSinceLastSlipUp = %d, want %d", got.HoursSinceLastSlipUp, tt.wantHours)
			}
			if got.DaysSinceLastSlipUp != tt.wantHours/24 {
				t.Errorf("DaysSinceLastSlipUp = %d, want %d", got.DaysSinceLastSlipUp, tt.wantHours/24)
			}
		})
	}
}

func TestDaysSinceQuitAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	profile := models.Profile{
		QuitDate:          "2026-03-01",
		DailyCigarettes:   10,
		CostPerPack:       10,
		CigarettesPerPack: 20,
	}

	tests := []struct {
		name     string
		now      time.Time
		wantDays int
	}{
		{"just after midnight past spring forward", time.Date(2026, 3, 16, 0, 30, 0, 0, loc), 15},
		{"late evening past spring forward", time.Date(2026, 3, 15, 23, 30, 0, 0, loc), 14},
		{"just after midnight past fall back", time.Date(2026, 11, 2, 0, 30, 0, 0, loc), 246},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elapsed := ComputeElapsed(profile, nil, tt.now)
			if elapsed.DaysSinceQuit != tt.wantDays {
				t.Errorf("DaysSinceQuit = %d, want %d", elapsed.DaysSinceQuit, tt.wantDays)
			}

			cal := ClassifyCalendarMonth(profile, nil, tt.now.Year(), tt.now.Month(), tt.now)
			if tt.now.Month() == time.March && cal.DaysTracked != elapsed.DaysSinceQuit+1 {
				t.Errorf("calendar tracks %d days, want DaysSinceQuit+1 = %d", cal.DaysTracked, elapsed.DaysSinceQuit+1)
			}
		})
	}

	now := time.Date(2026, 3, 16, 0, 30, 0, 0, loc)
	eval := EvaluateAchievements(profile, nil, nil, DefaultAchievements(), now)
	if a := findAchievement(t, eval.Achievements, "5"); !a.Unlocked {
		t.Error("Halfway There should unlock on the 15th calendar day")
	}
	if got := ComputeSavings(profile, ComputeElapsed(profile, nil, now).DaysSinceQuit, 0).ExpectedCigarettes; got != 160 {
		t.Errorf("ExpectedCigarettes = %d, want 160", got)
	}
}

func TestUnparsableQuitDateIsConsistent(t *testing.T) {
	profile := models.Profile{QuitDate: "not-a-date", DailyCigarettes: 10}

	elapsed := ComputeElapsed(profile, nil, testNow)
	cal := ClassifyCalendarMonth(profile, nil, 2026, time.March, testNow)
	st := ComputeRollingStatistics(profile, nil, nil, testNow)

	if elapsed.DaysSinceQuit != 0 {
		t.Errorf("DaysSinceQuit = %d, want 0", elapsed.DaysSinceQuit)
	}
	if cal.DaysTracked != 1 {
		t.Errorf("calendar DaysTracked = %d, want only today", cal.DaysTracked)
	}
	if len(st.Daily) != 1 {
		t.Errorf("rolling series has %d days, want only today", len(st.Daily))
	}
}

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		days, hours  int
		wantLevel    Level
		wantProgress float64
	}{
		{0, 0, LevelNovice, 0},
		{0, 3, LevelNovice, 12.5},
		{0, 23, LevelNovice, 23.0 / 24 * 100},
		{1, 24, LevelApprentice, 0},
		{4, 100, LevelApprentice, 50},
		{7, 168, LevelTracker, 0},
		{10, 252, LevelTracker, 3.0 / 23 * 100},
		{30, 720, LevelExpert, 0},
		{60, 1440, LevelExpert, 50},
		{90, 2160, LevelChampion, 100},
		{400, 9600, LevelChampion, 100},
	}

	for _, tt := range tests {
		level, progress := ClassifyLevel(tt.days, tt.hours)
		if level != tt.wantLevel {
			t.Errorf("ClassifyLevel(%d, %d) level = %s, want %s", tt.days, tt.hours, level, tt.wantLevel)
		}
		if !approxEqual(progress, tt.wantProgress) {
			t.Errorf("ClassifyLevel(%d, %d) progress = %v, want %v", tt.days, tt.hours, progress, tt.wantProgress)
		}
	}
}

func TestNextLevel(t *testing.T) {
	if got := NextLevel(LevelApprentice); got != LevelTracker {
		t.Errorf("NextLevel(Apprentice) = %s", got)
	}
	if got := NextLevel(LevelChampion); got != "" {
		t.Errorf("NextLevel(Champion) = %s, want empty", got)
	}
}

func TestComputeSavings(t *testing.T) {
	tests := []struct {
		name        string
		profile     models.Profile
		days, slips int
		wantAvoided int
		wantMoney   float64
	}{
		{"baseline", profileQuitDaysAgo(10), 10, 0, 110, 1100},
		{"slip-ups subtract", profileQuitDaysAgo(10), 10, 10, 100, 1000},
		{"more slip-ups than expected", profileQuitDaysAgo(0), 0, 50, 0, 0},
		{"zero pack size", models.Profile{DailyCigarettes: 10, CostPerPack: 10}, 3, 0, 40, 0},
		{"zero baseline", models.Profile{CostPerPack: 10, CigarettesPerPack: 20}, 3, 0, 0, 0},
		{"negative cost", models.Profile{DailyCigarettes: 5, CostPerPack: -1, CigarettesPerPack: 20}, 1, 0, 10, 0},
		{"negative days", profileQuitDaysAgo(0), -4, 0, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSavings(tt.profile, tt.days, tt.slips)
			if got.CigarettesAvoided != tt.wantAvoided {
				t.Errorf("CigarettesAvoided = %d, want %d", got.CigarettesAvoided, tt.wantAvoided)
			}
			if !approxEqual(got.MoneySaved, tt.wantMoney) {
				t.Errorf("MoneySaved = %v, want %v", got.MoneySaved, tt.wantMoney)
			}
			if got.MoneySaved < 0 || math.IsNaN(got.MoneySaved) || math.IsInf(got.MoneySaved, 0) {
				t.Errorf("MoneySaved = %v, want finite and non-negative", got.MoneySaved)
			}
		})
	}
}

func TestScenarioTenDaysClean(t *testing.T) {
	profile := profileQuitDaysAgo(10)
	m := ComputeDashboardMetrics(profile, nil, nil, testNow)

	if m.CigarettesAvoided != 110 {
		t.Errorf("CigarettesAvoided = %d, want 110", m.CigarettesAvoided)
	}
	if !approxEqual(m.MoneySaved, 1100) {
		t.Errorf("MoneySaved = %v, want 1100", m.MoneySaved)
	}
	// Ten clean days sit past the seven-day Tracker threshold.
	if m.Level != LevelTracker {
		t.Errorf("Level = %s, want %s", m.Level, LevelTracker)
	}
	if !approxEqual(m.LevelProgress, 3.0/23*100) {
		t.Errorf("LevelProgress = %v", m.LevelProgress)
	}

	eval := EvaluateAchievements(profile, nil, nil, DefaultAchievements(), testNow)
	if findAchievement(t, eval.Achievements, "5").Unlocked {
		t.Error("Halfway There unlocked after 10 days")
	}
}

func TestScenarioRecentSlipUp(t *testing.T) {
	profile := profileQuitDaysAgo(10)
	slipUps := []models.SlipUp{{ID: "s1", Timestamp: testNow.Add(-3 * time.Hour)}}

	m := ComputeDashboardMetrics(profile, slipUps, nil, testNow)
	if m.StreakHours != 3 {
		t.Errorf("StreakHours = %d, want 3", m.StreakHours)
	}
	if m.Level != LevelNovice {
		t.Errorf("Level = %s, want Novice", m.Level)
	}
	if !approxEqual(m.LevelProgress, 12.5) {
		t.Errorf("LevelProgress = %v, want 12.5", m.LevelProgress)
	}
	if m.CigarettesAvoided != 109 {
		t.Errorf("CigarettesAvoided = %d, want 109", m.CigarettesAvoided)
	}

	eval := EvaluateAchievements(profile, slipUps, nil, DefaultAchievements(), testNow)
	if findAchievement(t, eval.Achievements, "1").Unlocked {
		t.Error("48 Hours Cleared unlocked 3 hours after a slip-up")
	}
}

func TestScenarioTenConquests(t *testing.T) {
	profile := profileQuitDaysAgo(0)
	achievements := DefaultAchievements()
	var conquests []models.Conquest

	for i := 1; i <= 10; i++ {
		now := testNow.Add(time.Duration(i) * time.Minute)
		conquests = append(conquests, models.Conquest{ID: string(rune('a' + i)), Timestamp: now, Points: constants.ConquestPoints})
		eval := EvaluateAchievements(profile, nil, conquests, achievements, now)
		achievements = eval.Achievements

		got := findAchievement(t, achievements, "3")
		if i < 10 && got.Unlocked {
			t.Fatalf("achievement 3 unlocked after %d conquests", i)
		}
		if i == 10 {
			if !got.Unlocked {
				t.Fatal("achievement 3 still locked after 10 conquests")
			}
			if !got.UnlockedAt.Equal(now) {
				t.Errorf("UnlockedAt = %v, want %v", got.UnlockedAt, now)
			}
		}
	}

	if pts := models.TotalPoints(conquests); pts != 100 {
		t.Errorf("TotalPoints = %d, want 100", pts)
	}
}

func TestScenarioNinetyOneDaysClean(t *testing.T) {
	profile := profileQuitDaysAgo(91)
	eval := EvaluateAchievements(profile, nil, nil, DefaultAchievements(), testNow)

	for _, id := range []string{"1", "2", "5", "6", "8"} {
		if !findAchievement(t, eval.Achievements, id).Unlocked {
			t.Errorf("achievement %s locked after 91 clean days", id)
		}
	}
	for _, id := range []string{"3", "7"} {
		if findAchievement(t, eval.Achievements, id).Unlocked {
			t.Errorf("achievement %s unlocked without conquests", id)
		}
	}

	m := ComputeDashboardMetrics(profile, nil, nil, testNow)
	if m.CigarettesAvoided != profile.DailyCigarettes*92 {
		t.Errorf("CigarettesAvoided = %d, want %d", m.CigarettesAvoided, profile.DailyCigarettes*92)
	}
	if m.Level != LevelChampion {
		t.Errorf("Level = %s, want Champion", m.Level)
	}
}

func TestScenarioZeroBaseline(t *testing.T) {
	profile := profileQuitDaysAgo(10)
	profile.DailyCigarettes = 0
	slipUps := []models.SlipUp{{Timestamp: testNow.Add(-time.Hour)}}

	st := ComputeRollingStatistics(profile, slipUps, nil, testNow)
	if st.ReductionRate != 0 {
		t.Errorf("ReductionRate = %v, want 0", st.ReductionRate)
	}
	if st.MoneySaved != 0 {
		t.Errorf("MoneySaved = %v, want 0", st.MoneySaved)
	}
}
