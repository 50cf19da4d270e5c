package engine

import "github.com/julianstephens/smokefree/internal/models"

// Savings is the money and avoidance estimate.
type Savings struct {
	CostPerCigarette   float64
	ExpectedCigarettes int
	CigarettesAvoided  int
	MoneySaved         float64
}

// ComputeSavings projects the pre-quit baseline over the days since quitting,
// including the current partial day, and subtracts every slip-up ever logged.
// A profile with a non-positive baseline, cost or pack size yields zeros instead
// of NaN or Inf.
func ComputeSavings(profile models.Profile, daysSinceQuit, totalSlipUps int) Savings {
	if daysSinceQuit < 0 {
		daysSinceQuit = 0
	}

	s := Savings{CostPerCigarette: profile.CostPerCigarette()}
	if profile.DailyCigarettes > 0 {
		s.ExpectedCigarettes = profile.DailyCigarettes * (daysSinceQuit + 1)
	}

	s.CigarettesAvoided = s.ExpectedCigarettes - totalSlipUps
	if s.CigarettesAvoided < 0 {
		s.CigarettesAvoided = 0
	}
	s.MoneySaved = float64(s.CigarettesAvoided) * s.CostPerCigarette
	return s
}
