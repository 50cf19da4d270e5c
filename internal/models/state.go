package models

// AppState is the full persisted state of the application. Each field maps to
// one stored document.
type AppState struct {
	Profile      *Profile      `json:"profile,omitempty"`
	SlipUps      []SlipUp      `json:"slip_ups"`
	Conquests    []Conquest    `json:"conquests"`
	QuitPoints   int           `json:"quit_points"`
	Achievements []Achievement `json:"achievements"`
	DarkMode     bool          `json:"dark_mode"`
}

// SetupComplete reports whether onboarding has finished.
func (s AppState) SetupComplete() bool {
	return s.Profile != nil && s.Profile.SetupComplete
}

// TotalPoints sums the points of every conquest.
func TotalPoints(conquests []Conquest) int {
	total := 0
	for _, c := range conquests {
		total += c.Points
	}
	return total
}
