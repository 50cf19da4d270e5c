package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/models"
)

func TestDefaultAchievements(t *testing.T) {
	got := DefaultAchievements()
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	for i, a := range got {
		if a.Unlocked || a.UnlockedAt != nil {
			t.Errorf("achievement %s should start locked", a.ID)
		}
		if a.ID != achievementCatalog[i].ID {
			t.Errorf("position %d has id %s, want %s", i, a.ID, achievementCatalog[i].ID)
		}
	}
}

func TestAchievementPredicates(t *testing.T) {
	tests := []struct {
		id   string
		snap ProgressSnapshot
		want bool
	}{
		{"1", ProgressSnapshot{HoursSinceLastSlipUp: 47}, false},
		{"1", ProgressSnapshot{HoursSinceLastSlipUp: 48}, true},
		{"2", ProgressSnapshot{HoursSinceLastSlipUp: 168}, true},
		{"3", ProgressSnapshot{ConquestCount: 9}, false},
		{"3", ProgressSnapshot{ConquestCount: 10}, true},
		{"4", ProgressSnapshot{MoneySaved: 99.99}, false},
		{"4", ProgressSnapshot{MoneySaved: 100}, true},
		{"5", ProgressSnapshot{DaysSinceQuit: 15, SlipUpCount: 1}, false},
		{"5", ProgressSnapshot{DaysSinceQuit: 15}, true},
		{"6", ProgressSnapshot{DaysSinceQuit: 30}, true},
		{"7", ProgressSnapshot{ConquestCount: 50}, true},
		{"8", ProgressSnapshot{DaysSinceQuit: 89}, false},
		{"8", ProgressSnapshot{DaysSinceQuit: 90}, true},
	}

	byID := make(map[string]AchievementDef)
	for _, def := range AchievementCatalog() {
		byID[def.ID] = def
	}

	for _, tt := range tests {
		if got := byID[tt.id].Predicate(tt.snap); got != tt.want {
			t.Errorf("achievement %s with %+v = %v, want %v", tt.id, tt.snap, got, tt.want)
		}
	}
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	profile := profileQuitDaysAgo(20)
	first := EvaluateAchievements(profile, nil, nil, DefaultAchievements(), testNow)
	if len(first.NewlyUnlocked) == 0 {
		t.Fatal("expected unlocks after 20 clean days")
	}

	second := EvaluateAchievements(profile, nil, nil, first.Achievements, testNow)
	if !reflect.DeepEqual(first.Achievements, second.Achievements) {
		t.Error("second evaluation changed the achievement set")
	}
	if len(second.NewlyUnlocked) != 0 {
		t.Errorf("second evaluation unlocked %d achievements", len(second.NewlyUnlocked))
	}

	later := testNow.Add(48 * time.Hour)
	third := EvaluateAchievements(profile, nil, nil, first.Achievements, later)
	for _, a := range third.Achievements {
		if a.Unlocked && a.ID == "5" && !a.UnlockedAt.Equal(testNow) {
			t.Errorf("achievement 5 re-stamped to %v", a.UnlockedAt)
		}
	}
}

func TestEvaluateAchievementsMonotonic(t *testing.T) {
	profile := profileQuitDaysAgo(40)
	achievements := DefaultAchievements()
	var slipUps []models.SlipUp
	var conquests []models.Conquest

	prevUnlocked := 0
	prevPoints := 0
	for i := 0; i < 60; i++ {
		now := testNow.Add(time.Duration(i) * time.Hour)
		if i%3 == 0 {
			slipUps = append(slipUps, models.SlipUp{Timestamp: now})
		} else {
			conquests = append(conquests, models.Conquest{Timestamp: now, Points: constants.ConquestPoints})
		}

		achievements = EvaluateAchievements(profile, slipUps, conquests, achievements, now).Achievements
		unlocked := models.UnlockedCount(achievements)
		points := models.TotalPoints(conquests)
		if unlocked < prevUnlocked {
			t.Fatalf("unlocked count dropped from %d to %d", prevUnlocked, unlocked)
		}
		if points < prevPoints {
			t.Fatalf("points dropped from %d to %d", prevPoints, points)
		}
		prevUnlocked, prevPoints = unlocked, points
	}
}

func TestNormalizeAchievements(t *testing.T) {
	at := testNow
	stored := []models.Achievement{
		{ID: "8", Name: "old name", Unlocked: true, UnlockedAt: &at},
		{ID: "99", Name: "unknown", Unlocked: true, UnlockedAt: &at},
		{ID: "2", Unlocked: true},
		{ID: "3", Unlocked: false, UnlockedAt: &at},
	}

	got := NormalizeAchievements(stored)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	for _, a := range got {
		if a.Unlocked != (a.UnlockedAt != nil) {
			t.Errorf("achievement %s breaks the unlocked/timestamp pairing", a.ID)
		}
	}

	eight := findAchievement(t, got, "8")
	if !eight.Unlocked || eight.Name != "Smoke-Free Champion" {
		t.Errorf("achievement 8 = %+v", eight)
	}
	if !findAchievement(t, got, "2").Unlocked {
		t.Error("achievement 2 lost its unlock")
	}
	if findAchievement(t, got, "3").Unlocked {
		t.Error("achievement 3 should stay locked")
	}
}

func TestCompletionPercent(t *testing.T) {
	achievements := DefaultAchievements()
	if got := CompletionPercent(achievements); got != 0 {
		t.Errorf("CompletionPercent = %v, want 0", got)
	}
	at := testNow
	achievements[0].Unlocked, achievements[0].UnlockedAt = true, &at
	achievements[1].Unlocked, achievements[1].UnlockedAt = true, &at
	if got := CompletionPercent(achievements); got != 25 {
		t.Errorf("CompletionPercent = %v, want 25", got)
	}
	if got := CompletionPercent(nil); got != 0 {
		t.Errorf("CompletionPercent(nil) = %v, want 0", got)
	}
}
