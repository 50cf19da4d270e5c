// Package coping holds the catalog of guided techniques offered when a craving hits.
package coping

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryBreathing   Category = "breathing"
	CategoryMental      Category = "mental"
	CategoryPhysical    Category = "physical"
	CategoryDistraction Category = "distraction"
)

// Technique is a guided exercise with ordered steps.
type Technique struct {
	ID           string
	Title        string
	Description  string
	Duration     string
	Category     Category
	Instructions []string
}

var techniques = []Technique{
	{
		ID:          "1",
		Title:       "4-7-8 Breathing",
		Description: "A calming breathing exercise to reduce cravings",
		Duration:    "1 minute",
		Category:    CategoryBreathing,
		Instructions: []string{
			"Exhale completely through your mouth",
			"Close your mouth and inhale through your nose for 4 seconds",
			"Hold your breath for 7 seconds",
			"Exhale completely through your mouth for 8 seconds",
			"Repeat 3-4 times",
		},
	},
	{
		ID:          "2",
		Title:       "The 5-4-3-2-1 Technique",
		Description: "Ground yourself in the present moment",
		Duration:    "2 minutes",
		Category:    CategoryMental,
		Instructions: []string{
			"Name 5 things you can see around you",
			"Name 4 things you can touch",
			"Name 3 things you can hear",
			"Name 2 things you can smell",
			"Name 1 thing you can taste",
			"Take a deep breath and notice how you feel",
		},
	},
	{
		ID:          "3",
		Title:       "Quick Walk",
		Description: "Move your body to shift your focus",
		Duration:    "5 minutes",
		Category:    CategoryPhysical,
		Instructions: []string{
			"Stand up and stretch",
			"Walk around your space or step outside",
			"Focus on your breathing and surroundings",
			"Notice how your body feels as you move",
			"Return when the craving passes",
		},
	},
	{
		ID:          "4",
		Title:       "Drink Water",
		Description: "Hydrate and occupy your hands and mouth",
		Duration:    "30 seconds",
		Category:    CategoryDistraction,
		Instructions: []string{
			"Get a glass of cold water",
			"Drink slowly, focusing on the sensation",
			"Hold the glass with both hands",
			"Take small sips and breathe between them",
			"Notice how refreshed you feel",
		},
	},
	{
		ID:          "5",
		Title:       "Call a Friend",
		Description: "Connect with someone who supports your journey",
		Duration:    "5-10 minutes",
		Category:    CategoryDistraction,
		Instructions: []string{
			"Think of someone supportive",
			"Call or text them",
			"Share that you're having a craving",
			"Talk about anything to distract yourself",
			"Thank them for their support",
		},
	},
	{
		ID:          "6",
		Title:       "Playlist Power",
		Description: "Use music to change your mood",
		Duration:    "3-5 minutes",
		Category:    CategoryDistraction,
		Instructions: []string{
			"Put on your favorite upbeat song",
			"Turn up the volume",
			"Sing along or dance if you can",
			"Let the music shift your energy",
			"Notice the craving fade",
		},
	},
}

// All returns the techniques in display order.
func All() []Technique {
	out := make([]Technique, len(techniques))
	copy(out, techniques)
	return out
}

// Find looks a technique up by id or, case-insensitively, by title.
func Find(key string) (Technique, error) {
	key = strings.TrimSpace(key)
	for _, t := range techniques {
		if t.ID == key || strings.EqualFold(t.Title, key) {
			return t, nil
		}
	}
	return Technique{}, fmt.Errorf("unknown coping technique %q", key)
}

// Session walks through a technique one step at a time.
type Session struct {
	Technique Technique
	step      int
}

func NewSession(t Technique) *Session {
	return &Session{Technique: t}
}

// Step is the zero-based index of the current instruction.
func (s *Session) Step() int { return s.step }

func (s *Session) Current() string {
	if len(s.Technique.Instructions) == 0 {
		return ""
	}
	return s.Technique.Instructions[s.step]
}

// Next advances to the following instruction and reports whether there was one.
func (s *Session) Next() bool {
	if s.step+1 >= len(s.Technique.Instructions) {
		return false
	}
	s.step++
	return true
}

func (s *Session) Prev() bool {
	if s.step == 0 {
		return false
	}
	s.step--
	return true
}

// Done reports whether the last instruction is showing.
func (s *Session) Done() bool {
	return s.step >= len(s.Technique.Instructions)-1
}
