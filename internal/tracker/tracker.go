// Package tracker owns the in-memory application state. Every mutation goes
// through a Service method, which samples the clock once, persists the changed
// documents, re-evaluates achievements and reports any new unlocks.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/engine"
	apperrors "github.com/julianstephens/smokefree/internal/errors"
	"github.com/julianstephens/smokefree/internal/logger"
	"github.com/julianstephens/smokefree/internal/models"
	"github.com/julianstephens/smokefree/internal/notifier"
	"github.com/julianstephens/smokefree/internal/storage"
	"github.com/julianstephens/smokefree/internal/validation"
)

// BackupFunc snapshots the store before a destructive operation and returns
// the backup location.
type BackupFunc func() (string, error)

type Service struct {
	store    storage.Provider
	clock    func() time.Time
	loc      *time.Location
	notifier notifier.Sender
	backup   BackupFunc

	state        models.AppState
	storedPoints int
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithLocation sets the timezone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithNotifier(n notifier.Sender) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithBackup runs fn before Reset clears the store.
func WithBackup(fn BackupFunc) Option {
	return func(s *Service) { s.backup = fn }
}

func New(store storage.Provider, opts ...Option) *Service {
	s := &Service{
		store:    store,
		clock:    time.Now,
		loc:      time.Local,
		notifier: notifier.Nop{},
		state:    emptyState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func emptyState() models.AppState {
	return models.AppState{
		SlipUps:      []models.SlipUp{},
		Conquests:    []models.Conquest{},
		Achievements: engine.DefaultAchievements(),
	}
}

// Now returns the current instant in the service's timezone.
func (s *Service) Now() time.Time {
	return s.clock().In(s.loc)
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// Load reads every document. A document that is missing or unreadable falls
// back to its default and is logged; Load itself never fails on bad data.
func (s *Service) Load() {
	state := emptyState()

	if p, err := s.store.GetProfile(); err == nil {
		state.Profile = &p
	} else {
		warnLoad(constants.KeyProfile, err)
	}

	if slipUps, err := s.store.GetSlipUps(); err == nil {
		state.SlipUps = slipUps
	} else {
		warnLoad(constants.KeySlipUps, err)
	}

	if conquests, err := s.store.GetConquests(); err == nil {
		state.Conquests = conquests
	} else {
		warnLoad(constants.KeyConquests, err)
	}

	if achievements, err := s.store.GetAchievements(); err == nil {
		state.Achievements = engine.NormalizeAchievements(achievements)
	} else {
		warnLoad(constants.KeyAchievements, err)
	}

	if dark, err := s.store.GetDarkMode(); err == nil {
		state.DarkMode = dark
	} else {
		warnLoad(constants.KeyDarkMode, err)
	}

	state.QuitPoints = models.TotalPoints(state.Conquests)
	s.storedPoints = state.QuitPoints
	if stored, err := s.store.GetQuitPoints(); err == nil {
		s.storedPoints = stored
		if stored != state.QuitPoints {
			logger.Warn("Stored quit points disagree with conquest log, using derived value",
				"stored", stored, "derived", state.QuitPoints)
		}
	} else {
		warnLoad(constants.KeyQuitPoints, err)
	}

	if state.SlipUps == nil {
		state.SlipUps = []models.SlipUp{}
	}
	if state.Conquests == nil {
		state.Conquests = []models.Conquest{}
	}

	s.state = state
}

func warnLoad(key string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		logger.Debug("Document not stored yet, using default", "key", key)
		return
	}
	logger.Warn("Failed to read document, using default", "key", key, "error", err)
}

// State returns a copy of the current state.
func (s *Service) State() models.AppState {
	out := s.state
	if s.state.Profile != nil {
		p := *s.state.Profile
		out.Profile = &p
	}
	out.SlipUps = append([]models.SlipUp(nil), s.state.SlipUps...)
	out.Conquests = append([]models.Conquest(nil), s.state.Conquests...)
	out.Achievements = append([]models.Achievement(nil), s.state.Achievements...)
	return out
}

// StoredQuitPoints is the quit_points value read from storage, which may
// disagree with the conquest log.
func (s *Service) StoredQuitPoints() int {
	return s.storedPoints
}

func (s *Service) SetupComplete() bool {
	return s.state.SetupComplete()
}

// Profile returns the profile or ErrSetupIncomplete.
func (s *Service) Profile() (models.Profile, error) {
	if !s.state.SetupComplete() {
		return models.Profile{}, apperrors.ErrSetupIncomplete
	}
	return *s.state.Profile, nil
}

// Onboard stores the first profile and marks setup as complete.
func (s *Service) Onboard(p models.Profile) ([]models.Achievement, error) {
	now := s.Now()
	if p.CigarettesPerPack == 0 {
		p.CigarettesPerPack = constants.DefaultCigarettesPerPack
	}
	vr := validation.ValidateProfile(p, now)
	if err := vr.Err(); err != nil {
		return nil, err
	}
	p.SetupComplete = true

	if err := s.store.SaveProfile(p); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	s.state.Profile = &p
	logger.Info("Onboarding complete", "quit_date", p.QuitDate)

	return s.evaluate(now)
}

// UpdateProfile replaces the profile after validation.
func (s *Service) UpdateProfile(p models.Profile) ([]models.Achievement, error) {
	if !s.state.SetupComplete() {
		return nil, apperrors.ErrSetupIncomplete
	}
	now := s.Now()
	vr := validation.ValidateProfile(p, now)
	if err := vr.Err(); err != nil {
		return nil, err
	}
	p.SetupComplete = true

	if err := s.store.SaveProfile(p); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	s.state.Profile = &p
	logger.Info("Profile updated", "quit_date", p.QuitDate)

	return s.evaluate(now)
}

// LogSlipUp appends a slip-up. An empty location or zero strength is stored
// as "not specified".
func (s *Service) LogSlipUp(location string, strength int) (models.SlipUp, []models.Achievement, error) {
	if !s.state.SetupComplete() {
		return models.SlipUp{}, nil, apperrors.ErrSetupIncomplete
	}
	vr := validation.ValidateSlipUp(location, strength)
	if err := vr.Err(); err != nil {
		return models.SlipUp{}, nil, err
	}

	now := s.Now()
	slipUp := models.SlipUp{
		ID:              uuid.New().String(),
		Timestamp:       now,
		Location:        location,
		CravingStrength: strength,
	}

	next := append(append(make([]models.SlipUp, 0, len(s.state.SlipUps)+1), s.state.SlipUps...), slipUp)
	if err := s.store.SaveSlipUps(next); err != nil {
		return models.SlipUp{}, nil, fmt.Errorf("failed to save slip-ups: %w", err)
	}
	s.state.SlipUps = next
	logger.Info("Slip-up logged", "location", location, "strength", strength)

	unlocked, err := s.evaluate(now)
	return slipUp, unlocked, err
}

// ConquerCraving records a resisted craving worth constants.ConquestPoints.
func (s *Service) ConquerCraving() (models.Conquest, []models.Achievement, error) {
	if !s.state.SetupComplete() {
		return models.Conquest{}, nil, apperrors.ErrSetupIncomplete
	}

	now := s.Now()
	conquest := models.Conquest{
		ID:        uuid.New().String(),
		Timestamp: now,
		Points:    constants.ConquestPoints,
	}

	next := append(append(make([]models.Conquest, 0, len(s.state.Conquests)+1), s.state.Conquests...), conquest)
	if err := s.store.SaveConquests(next); err != nil {
		return models.Conquest{}, nil, fmt.Errorf("failed to save conquests: %w", err)
	}
	s.state.Conquests = next
	logger.Info("Craving conquered", "total", len(next))

	unlocked, err := s.evaluate(now)
	return conquest, unlocked, err
}

// SetDarkMode persists the theme preference.
func (s *Service) SetDarkMode(dark bool) error {
	if err := s.store.SaveDarkMode(dark); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	s.state.DarkMode = dark
	return nil
}

// Evaluate re-checks achievements without any other change. Time alone can
// unlock streak badges, so views call this before rendering.
func (s *Service) Evaluate() ([]models.Achievement, error) {
	if !s.state.SetupComplete() {
		return nil, nil
	}
	return s.evaluate(s.Now())
}

func (s *Service) evaluate(now time.Time) ([]models.Achievement, error) {
	points := models.TotalPoints(s.state.Conquests)
	if points != s.state.QuitPoints || points != s.storedPoints {
		if err := s.store.SaveQuitPoints(points); err != nil {
			return nil, fmt.Errorf("failed to save quit points: %w", err)
		}
		s.state.QuitPoints = points
		s.storedPoints = points
	}

	eval := engine.EvaluateAchievements(*s.state.Profile, s.state.SlipUps, s.state.Conquests, s.state.Achievements, now)
	if len(eval.NewlyUnlocked) == 0 {
		s.state.Achievements = eval.Achievements
		return nil, nil
	}

	if err := s.store.SaveAchievements(eval.Achievements); err != nil {
		return nil, fmt.Errorf("failed to save achievements: %w", err)
	}
	s.state.Achievements = eval.Achievements

	for _, a := range eval.NewlyUnlocked {
		logger.Info("Achievement unlocked", "id", a.ID, "name", a.Name)
		if err := s.notifier.Notify(notifier.AchievementMessage(a)); err != nil {
			logger.Debug("Notification not delivered", "error", err)
		}
	}
	return eval.NewlyUnlocked, nil
}

// Reset takes a backup when configured, then clears every document. The
// returned path is empty when no backup was made.
func (s *Service) Reset() (string, error) {
	var backupPath string
	if s.backup != nil {
		path, err := s.backup()
		if err != nil {
			return "", fmt.Errorf("backup before reset failed: %w", err)
		}
		backupPath = path
	}

	if err := s.store.Reset(); err != nil {
		return backupPath, fmt.Errorf("failed to reset storage: %w", err)
	}
	s.state = emptyState()
	s.storedPoints = 0
	logger.Info("All data reset", "backup", backupPath)
	return backupPath, nil
}

// Validate runs the integrity checks over the loaded state.
func (s *Service) Validate() validation.ValidationResult {
	state := s.State()
	state.QuitPoints = s.storedPoints
	return validation.ValidateState(state, s.Now())
}
