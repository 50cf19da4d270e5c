package models

import "time"

// SlipUp is a logged cigarette after the quit date
type SlipUp struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Location        string    `json:"location,omitempty"`         // empty when not specified
	CravingStrength int       `json:"craving_strength,omitempty"` // 1-5, 0 when not specified
}

// HasLocation reports whether a location was recorded.
func (s SlipUp) HasLocation() bool {
	return s.Location != ""
}

// Conquest is a resisted craving
type Conquest struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Points    int       `json:"points"`
}
