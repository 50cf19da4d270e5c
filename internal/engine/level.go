package engine

// Level is a named streak tier.
type Level string

const (
	LevelNovice     Level = "Novice"
	LevelApprentice Level = "Apprentice"
	LevelTracker    Level = "Tracker"
	LevelExpert     Level = "Expert"
	LevelChampion   Level = "Champion"
)

type levelTier struct {
	level   Level
	minDays int
	// spanDays is the width of the tier used for progress; 0 means the tier is terminal.
	spanDays int
}

// levelTiers is ordered highest first; the first tier whose minimum is met wins.
var levelTiers = []levelTier{
	{level: LevelChampion, minDays: 90},
	{level: LevelExpert, minDays: 30, spanDays: 60},
	{level: LevelTracker, minDays: 7, spanDays: 23},
	{level: LevelApprentice, minDays: 1, spanDays: 6},
}

// ClassifyLevel maps a streak to its tier and the percentage through that tier.
// Below one full day the Novice tier measures progress in hours out of 24.
func ClassifyLevel(streakDays, streakHours int) (Level, float64) {
	for _, tier := range levelTiers {
		if streakDays < tier.minDays {
			continue
		}
		if tier.spanDays == 0 {
			return tier.level, 100
		}
		return tier.level, clampPercent(float64(streakDays-tier.minDays) / float64(tier.spanDays) * 100)
	}
	return LevelNovice, clampPercent(float64(streakHours) / 24 * 100)
}

// NextLevel returns the tier after l, or "" for the top tier.
func NextLevel(l Level) Level {
	switch l {
	case LevelNovice:
		return LevelApprentice
	case LevelApprentice:
		return LevelTracker
	case LevelTracker:
		return LevelExpert
	case LevelExpert:
		return LevelChampion
	default:
		return ""
	}
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
