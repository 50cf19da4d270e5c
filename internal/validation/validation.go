package validation

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/models"
)

// ProblemType represents the kind of validation failure
type ProblemType string

const (
	ProblemInvalidDate       ProblemType = "invalid_date"
	ProblemFutureDate        ProblemType = "future_date"
	ProblemNonPositive       ProblemType = "non_positive"
	ProblemEmpty             ProblemType = "empty"
	ProblemUnknownLocation   ProblemType = "unknown_location"
	ProblemStrengthRange     ProblemType = "strength_out_of_range"
	ProblemDuplicateID       ProblemType = "duplicate_id"
	ProblemFutureTimestamp   ProblemType = "future_timestamp"
	ProblemPointsMismatch    ProblemType = "points_mismatch"
	ProblemAchievementStamps ProblemType = "achievement_stamp"
)

// Problem is one detected issue.
type Problem struct {
	Type        ProblemType
	Field       string
	Description string
}

// ValidationResult contains all detected problems
type ValidationResult struct {
	Problems []Problem
}

// HasProblems returns true if there are any problems
func (vr *ValidationResult) HasProblems() bool {
	return len(vr.Problems) > 0
}

// FormatReport returns a human-readable report of all problems
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasProblems() {
		return "No problems detected."
	}

	var b strings.Builder
	b.WriteString("Problems detected:\n")
	for _, p := range vr.Problems {
		fmt.Fprintf(&b, "- %s\n", p.Description)
	}
	return b.String()
}

// Err folds the result into a single error, or nil when valid.
func (vr *ValidationResult) Err() error {
	if !vr.HasProblems() {
		return nil
	}
	msgs := make([]string, 0, len(vr.Problems))
	for _, p := range vr.Problems {
		msgs = append(msgs, p.Description)
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func (vr *ValidationResult) add(t ProblemType, field, format string, args ...interface{}) {
	vr.Problems = append(vr.Problems, Problem{Type: t, Field: field, Description: fmt.Sprintf(format, args...)})
}

// ValidateProfile checks a profile before it is accepted at onboarding or in
// settings. today decides whether the quit date lies in the future.
func ValidateProfile(p models.Profile, today time.Time) ValidationResult {
	var vr ValidationResult

	quit, err := time.ParseInLocation(constants.DateFormat, p.QuitDate, today.Location())
	switch {
	case err != nil:
		vr.add(ProblemInvalidDate, "quit_date", "quit date %q must be YYYY-MM-DD", p.QuitDate)
	case quit.After(today):
		vr.add(ProblemFutureDate, "quit_date", "quit date %s is in the future", p.QuitDate)
	}

	if p.DailyCigarettes <= 0 {
		vr.add(ProblemNonPositive, "daily_cigarettes", "daily cigarettes must be greater than 0")
	}
	if p.CostPerPack <= 0 {
		vr.add(ProblemNonPositive, "cost_per_pack", "cost per pack must be greater than 0")
	}
	if p.CigarettesPerPack <= 0 {
		vr.add(ProblemNonPositive, "cigarettes_per_pack", "cigarettes per pack must be greater than 0")
	}
	if strings.TrimSpace(p.MyWhy) == "" {
		vr.add(ProblemEmpty, "my_why", "your reason for quitting must not be empty")
	}
	return vr
}

// ValidateSlipUp checks the optional slip-up details. An empty location and a
// zero strength mean "not specified".
func ValidateSlipUp(location string, strength int) ValidationResult {
	var vr ValidationResult
	if location != "" && !IsKnownLocation(location) {
		vr.add(ProblemUnknownLocation, "location", "unknown location %q (choose one of: %s)", location, strings.Join(constants.Locations, ", "))
	}
	if strength != 0 && (strength < constants.MinCravingStrength || strength > constants.MaxCravingStrength) {
		vr.add(ProblemStrengthRange, "craving_strength", "craving strength %d must be between %d and %d", strength, constants.MinCravingStrength, constants.MaxCravingStrength)
	}
	return vr
}

// IsKnownLocation reports whether location is part of the fixed vocabulary.
func IsKnownLocation(location string) bool {
	return slices.Contains(constants.Locations, location)
}

// ValidateState checks stored state for integrity issues. It never modifies
// the state; the doctor command reports what it finds.
func ValidateState(state models.AppState, now time.Time) ValidationResult {
	var vr ValidationResult

	if state.Profile != nil && state.Profile.SetupComplete {
		pr := ValidateProfile(*state.Profile, now)
		vr.Problems = append(vr.Problems, pr.Problems...)
	}

	seen := make(map[string]bool)
	for _, s := range state.SlipUps {
		if s.ID != "" && seen[s.ID] {
			vr.add(ProblemDuplicateID, "slip_ups", "slip-up id %s appears more than once", s.ID)
		}
		seen[s.ID] = true
		if s.Timestamp.After(now) {
			vr.add(ProblemFutureTimestamp, "slip_ups", "slip-up %s is stamped in the future (%s)", s.ID, s.Timestamp.Format(time.RFC3339))
		}
		sv := ValidateSlipUp(s.Location, s.CravingStrength)
		vr.Problems = append(vr.Problems, sv.Problems...)
	}

	seen = make(map[string]bool)
	for _, c := range state.Conquests {
		if c.ID != "" && seen[c.ID] {
			vr.add(ProblemDuplicateID, "conquests", "conquest id %s appears more than once", c.ID)
		}
		seen[c.ID] = true
		if c.Timestamp.After(now) {
			vr.add(ProblemFutureTimestamp, "conquests", "conquest %s is stamped in the future (%s)", c.ID, c.Timestamp.Format(time.RFC3339))
		}
	}

	if derived := models.TotalPoints(state.Conquests); derived != state.QuitPoints {
		vr.add(ProblemPointsMismatch, "quit_points", "stored quit points %d differ from conquest total %d", state.QuitPoints, derived)
	}

	for _, a := range state.Achievements {
		if a.Unlocked != (a.UnlockedAt != nil) {
			vr.add(ProblemAchievementStamps, "achievements", "achievement %s has unlocked=%t but unlock time present=%t", a.ID, a.Unlocked, a.UnlockedAt != nil)
		}
	}
	return vr
}
