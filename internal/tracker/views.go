package tracker

import (
	"time"

	"github.com/julianstephens/smokefree/internal/engine"
	apperrors "github.com/julianstephens/smokefree/internal/errors"
	"github.com/julianstephens/smokefree/internal/models"
)

// Views bundles every derived figure for one sampled instant.
type Views struct {
	Now          time.Time
	Profile      models.Profile
	Elapsed      engine.Elapsed
	Dashboard    engine.DashboardMetrics
	Statistics   engine.Statistics
	Milestones   []engine.MilestoneStatus
	Achievements []models.Achievement
	DarkMode     bool
}

// Snapshot derives all views against one clock reading.
func (s *Service) Snapshot() (Views, error) {
	p, err := s.Profile()
	if err != nil {
		return Views{}, err
	}
	now := s.Now()
	elapsed := engine.ComputeElapsed(p, s.state.SlipUps, now)

	return Views{
		Now:          now,
		Profile:      p,
		Elapsed:      elapsed,
		Dashboard:    engine.ComputeDashboardMetrics(p, s.state.SlipUps, s.state.Conquests, now),
		Statistics:   engine.ComputeRollingStatistics(p, s.state.SlipUps, s.state.Conquests, now),
		Milestones:   engine.ClassifyHealthMilestones(elapsed.ExactHoursSinceLastSlipUp),
		Achievements: append([]models.Achievement(nil), s.state.Achievements...),
		DarkMode:     s.state.DarkMode,
	}, nil
}

func (s *Service) Dashboard() (engine.DashboardMetrics, error) {
	p, err := s.Profile()
	if err != nil {
		return engine.DashboardMetrics{}, err
	}
	return engine.ComputeDashboardMetrics(p, s.state.SlipUps, s.state.Conquests, s.Now()), nil
}

// Calendar classifies the given month. A zero year means the current month.
func (s *Service) Calendar(year int, month time.Month) (engine.CalendarMonth, error) {
	p, err := s.Profile()
	if err != nil {
		return engine.CalendarMonth{}, err
	}
	today := s.Now()
	if year == 0 {
		year, month = today.Year(), today.Month()
	}
	return engine.ClassifyCalendarMonth(p, s.state.SlipUps, year, month, today), nil
}

func (s *Service) Statistics() (engine.Statistics, error) {
	p, err := s.Profile()
	if err != nil {
		return engine.Statistics{}, err
	}
	return engine.ComputeRollingStatistics(p, s.state.SlipUps, s.state.Conquests, s.Now()), nil
}

// Health returns the milestone timeline and the exact hours it was measured at.
func (s *Service) Health() ([]engine.MilestoneStatus, float64, error) {
	p, err := s.Profile()
	if err != nil {
		return nil, 0, err
	}
	hours := engine.ComputeElapsed(p, s.state.SlipUps, s.Now()).ExactHoursSinceLastSlipUp
	return engine.ClassifyHealthMilestones(hours), hours, nil
}

func (s *Service) Achievements() ([]models.Achievement, error) {
	if !s.state.SetupComplete() {
		return nil, apperrors.ErrSetupIncomplete
	}
	return append([]models.Achievement(nil), s.state.Achievements...), nil
}
