package engine

import (
	"time"

	"github.com/julianstephens/smokefree/internal/models"
)

// ProgressSnapshot is the set of figures achievement predicates are checked against.
type ProgressSnapshot struct {
	HoursSinceLastSlipUp int
	DaysSinceQuit        int
	SlipUpCount          int
	ConquestCount        int
	MoneySaved           float64
}

// AchievementDef is one row of the badge catalog.
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Predicate   func(ProgressSnapshot) bool
}

// Evaluation is the result of an achievement pass.
type Evaluation struct {
	Achievements  []models.Achievement
	NewlyUnlocked []models.Achievement
}

var achievementCatalog = []AchievementDef{
	{
		ID: "1", Name: "48 Hours Cleared", Description: "48 hours smoke-free", Icon: "🌅",
		Predicate: func(s ProgressSnapshot) bool { return s.HoursSinceLastSlipUp >= 48 },
	},
	{
		ID: "2", Name: "First Week Victory", Description: "7 days smoke-free", Icon: "🎯",
		Predicate: func(s ProgressSnapshot) bool { return s.HoursSinceLastSlipUp >= 168 },
	},
	{
		ID: "3", Name: "Conquered the Morning Crave", Description: "Conquered 10 cravings", Icon: "☕",
		Predicate: func(s ProgressSnapshot) bool { return s.ConquestCount >= 10 },
	},
	{
		ID: "4", Name: "$100 Club", Description: "Saved $100", Icon: "💰",
		Predicate: func(s ProgressSnapshot) bool { return s.MoneySaved >= 100 },
	},
	{
		ID: "5", Name: "Halfway There", Description: "15 days smoke-free", Icon: "🌟",
		Predicate: func(s ProgressSnapshot) bool { return s.DaysSinceQuit >= 15 && s.SlipUpCount == 0 },
	},
	{
		ID: "6", Name: "Month Master", Description: "30 days smoke-free", Icon: "🏆",
		Predicate: func(s ProgressSnapshot) bool { return s.DaysSinceQuit >= 30 && s.SlipUpCount == 0 },
	},
	{
		ID: "7", Name: "Craving Crusher", Description: "Conquered 50 cravings", Icon: "💪",
		Predicate: func(s ProgressSnapshot) bool { return s.ConquestCount >= 50 },
	},
	{
		ID: "8", Name: "Smoke-Free Champion", Description: "90 days smoke-free", Icon: "👑",
		Predicate: func(s ProgressSnapshot) bool { return s.DaysSinceQuit >= 90 && s.SlipUpCount == 0 },
	},
}

// AchievementCatalog returns a copy of the badge definitions in display order.
func AchievementCatalog() []AchievementDef {
	out := make([]AchievementDef, len(achievementCatalog))
	copy(out, achievementCatalog)
	return out
}

// DefaultAchievements returns the catalog with every entry locked.
func DefaultAchievements() []models.Achievement {
	out := make([]models.Achievement, 0, len(achievementCatalog))
	for _, def := range achievementCatalog {
		out = append(out, lockedAchievement(def))
	}
	return out
}

// NormalizeAchievements aligns a stored set with the catalog: entries follow
// catalog order, missing entries come back locked, unknown ids are dropped and
// the static text is refreshed. Unlock state is kept, with UnlockedAt repaired
// so that it is present exactly when Unlocked is true.
func NormalizeAchievements(stored []models.Achievement) []models.Achievement {
	byID := make(map[string]models.Achievement, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}

	out := make([]models.Achievement, 0, len(achievementCatalog))
	for _, def := range achievementCatalog {
		a := lockedAchievement(def)
		if prev, ok := byID[def.ID]; ok && prev.Unlocked {
			a.Unlocked = true
			a.UnlockedAt = prev.UnlockedAt
			if a.UnlockedAt == nil {
				// Unlocked without a timestamp: keep it unlocked, stamp the zero time.
				zero := time.Time{}
				a.UnlockedAt = &zero
			}
		}
		out = append(out, a)
	}
	return out
}

// Snapshot computes the predicate inputs for the given logs at now.
func Snapshot(profile models.Profile, slipUps []models.SlipUp, conquests []models.Conquest, now time.Time) ProgressSnapshot {
	elapsed := ComputeElapsed(profile, slipUps, now)
	savings := ComputeSavings(profile, elapsed.DaysSinceQuit, len(slipUps))
	return ProgressSnapshot{
		HoursSinceLastSlipUp: elapsed.HoursSinceLastSlipUp,
		DaysSinceQuit:        elapsed.DaysSinceQuit,
		SlipUpCount:          len(slipUps),
		ConquestCount:        len(conquests),
		MoneySaved:           savings.MoneySaved,
	}
}

// EvaluateAchievements unlocks every locked achievement whose predicate now
// holds, stamping it with now. Unlocked entries are returned untouched, so
// repeated evaluation over the same inputs yields the same set.
func EvaluateAchievements(profile models.Profile, slipUps []models.SlipUp, conquests []models.Conquest, achievements []models.Achievement, now time.Time) Evaluation {
	snap := Snapshot(profile, slipUps, conquests, now)
	current := NormalizeAchievements(achievements)

	result := Evaluation{Achievements: make([]models.Achievement, 0, len(current))}
	for i, a := range current {
		def := achievementCatalog[i]
		if a.Unlocked || !def.Predicate(snap) {
			result.Achievements = append(result.Achievements, a)
			continue
		}
		unlockedAt := now
		a.Unlocked = true
		a.UnlockedAt = &unlockedAt
		result.Achievements = append(result.Achievements, a)
		result.NewlyUnlocked = append(result.NewlyUnlocked, a)
	}
	return result
}

// CompletionPercent is the share of the catalog that is unlocked.
func CompletionPercent(achievements []models.Achievement) float64 {
	if len(achievements) == 0 {
		return 0
	}
	return float64(models.UnlockedCount(achievements)) / float64(len(achievements)) * 100
}

func lockedAchievement(def AchievementDef) models.Achievement {
	return models.Achievement{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Icon:        def.Icon,
	}
}
