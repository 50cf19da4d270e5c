package tracker

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/smokefree/internal/constants"
	apperrors "github.com/julianstephens/smokefree/internal/errors"
	"github.com/julianstephens/smokefree/internal/models"
	"github.com/julianstephens/smokefree/internal/storage"
	"github.com/julianstephens/smokefree/internal/validation"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(text string) error {
	r.messages = append(r.messages, text)
	return nil
}

// brokenSlipUps fails every slip-up read.
type brokenSlipUps struct {
	*storage.DocumentStore
}

func (b brokenSlipUps) GetSlipUps() ([]models.SlipUp, error) {
	return nil, errors.New("disk on fire")
}

func newStore(t *testing.T) *storage.DocumentStore {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "smokefree.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return store
}

func newService(t *testing.T, store storage.Provider, opts ...Option) *Service {
	t.Helper()
	clock := func() time.Time { return testNow }
	opts = append([]Option{WithClock(clock), WithLocation(time.UTC)}, opts...)
	s := New(store, opts...)
	s.Load()
	return s
}

func testProfile() models.Profile {
	return models.Profile{
		QuitDate:          "2026-03-05",
		DailyCigarettes:   10,
		CostPerPack:       10,
		CigarettesPerPack: 20,
		MyWhy:             "my kids",
	}
}

func onboarded(t *testing.T, store storage.Provider, opts ...Option) *Service {
	t.Helper()
	s := newService(t, store, opts...)
	if _, err := s.Onboard(testProfile()); err != nil {
		t.Fatalf("Onboard() error = %v", err)
	}
	return s
}

func TestLoadEmptyStore(t *testing.T) {
	s := newService(t, newStore(t))

	state := s.State()
	if state.SetupComplete() {
		t.Error("empty store should not be set up")
	}
	if len(state.Achievements) != 8 || models.UnlockedCount(state.Achievements) != 0 {
		t.Errorf("Achievements = %+v, want 8 locked", state.Achievements)
	}
	if state.SlipUps == nil || state.Conquests == nil {
		t.Error("logs should default to empty, not nil")
	}
}

func TestSetupGate(t *testing.T) {
	s := newService(t, newStore(t))

	if _, _, err := s.LogSlipUp("", 0); !errors.Is(err, apperrors.ErrSetupIncomplete) {
		t.Errorf("LogSlipUp() error = %v, want ErrSetupIncomplete", err)
	}
	if _, _, err := s.ConquerCraving(); !errors.Is(err, apperrors.ErrSetupIncomplete) {
		t.Errorf("ConquerCraving() error = %v, want ErrSetupIncomplete", err)
	}
	if _, err := s.Dashboard(); !errors.Is(err, apperrors.ErrSetupIncomplete) {
		t.Errorf("Dashboard() error = %v, want ErrSetupIncomplete", err)
	}
	if _, err := s.UpdateProfile(testProfile()); !errors.Is(err, apperrors.ErrSetupIncomplete) {
		t.Errorf("UpdateProfile() error = %v, want ErrSetupIncomplete", err)
	}
}

func TestOnboard(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Profile)
		wantErr bool
	}{
		{"valid", func(p *models.Profile) {}, false},
		{"default pack size", func(p *models.Profile) { p.CigarettesPerPack = 0 }, false},
		{"future quit date", func(p *models.Profile) { p.QuitDate = "2026-04-01" }, true},
		{"zero baseline", func(p *models.Profile) { p.DailyCigarettes = 0 }, true},
		{"blank why", func(p *models.Profile) { p.MyWhy = "  " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t)
			s := newService(t, store)
			p := testProfile()
			tt.mutate(&p)

			_, err := s.Onboard(p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Onboard() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if s.SetupComplete() {
					t.Error("failed onboarding must not complete setup")
				}
				return
			}

			reloaded := newService(t, store)
			got, err := reloaded.Profile()
			if err != nil {
				t.Fatalf("Profile() after reload error = %v", err)
			}
			if !got.SetupComplete || got.CigarettesPerPack != constants.DefaultCigarettesPerPack {
				t.Errorf("reloaded profile = %+v", got)
			}
		})
	}
}

func TestOnboardUnlocksStreakBadges(t *testing.T) {
	n := &recordingNotifier{}
	s := newService(t, newStore(t), WithNotifier(n))

	unlocked, err := s.Onboard(testProfile())
	if err != nil {
		t.Fatal(err)
	}
	// ten clean days clear the 48 hour and first week badges
	if len(unlocked) != 2 || unlocked[0].ID != "1" || unlocked[1].ID != "2" {
		t.Fatalf("unlocked = %+v, want badges 1 and 2", unlocked)
	}
	if len(n.messages) != 2 {
		t.Errorf("notifications = %v, want 2", n.messages)
	}
	if !unlocked[0].UnlockedAt.Equal(testNow) {
		t.Errorf("UnlockedAt = %v, want %v", unlocked[0].UnlockedAt, testNow)
	}

	again, err := s.Evaluate()
	if err != nil || len(again) != 0 {
		t.Errorf("second Evaluate() = %v, %v; want nothing new", again, err)
	}
}

func TestConquerCraving(t *testing.T) {
	store := newStore(t)
	s := onboarded(t, store)

	var lastUnlocked []models.Achievement
	for i := 0; i < 10; i++ {
		c, unlocked, err := s.ConquerCraving()
		if err != nil {
			t.Fatalf("ConquerCraving() error = %v", err)
		}
		if c.Points != constants.ConquestPoints || c.ID == "" {
			t.Errorf("conquest = %+v", c)
		}
		if len(unlocked) > 0 {
			lastUnlocked = unlocked
		}
	}

	if len(lastUnlocked) != 1 || lastUnlocked[0].Name != "Conquered the Morning Crave" {
		t.Errorf("unlocked = %+v, want the ten-conquest badge", lastUnlocked)
	}
	if got := s.State().QuitPoints; got != 100 {
		t.Errorf("QuitPoints = %d, want 100", got)
	}

	stored, err := store.GetQuitPoints()
	if err != nil || stored != 100 {
		t.Errorf("stored quit points = %d, %v; want 100", stored, err)
	}
	reloaded := newService(t, store)
	if n := len(reloaded.State().Conquests); n != 10 {
		t.Errorf("reloaded conquests = %d, want 10", n)
	}
}

func TestLogSlipUp(t *testing.T) {
	store := newStore(t)
	s := onboarded(t, store)

	if _, _, err := s.LogSlipUp("On The Moon", 3); err == nil {
		t.Error("unknown location should be rejected")
	}
	if _, _, err := s.LogSlipUp("", 9); err == nil {
		t.Error("strength 9 should be rejected")
	}

	slip, _, err := s.LogSlipUp("With Coffee", 4)
	if err != nil {
		t.Fatalf("LogSlipUp() error = %v", err)
	}
	if !slip.Timestamp.Equal(testNow) || slip.ID == "" {
		t.Errorf("slip-up = %+v", slip)
	}
	if _, _, err := s.LogSlipUp("", 0); err != nil {
		t.Fatalf("unspecified slip-up error = %v", err)
	}

	d, err := s.Dashboard()
	if err != nil {
		t.Fatal(err)
	}
	if d.StreakHours != 0 || d.SlipUpCount != 2 {
		t.Errorf("dashboard = %+v, want streak reset and 2 slip-ups", d)
	}

	// badges stay unlocked after a slip-up
	if models.UnlockedCount(s.State().Achievements) != 2 {
		t.Errorf("unlocked = %d, want 2", models.UnlockedCount(s.State().Achievements))
	}

	reloaded := newService(t, store)
	slips := reloaded.State().SlipUps
	if len(slips) != 2 || slips[0].Location != "With Coffee" || slips[1].HasLocation() {
		t.Errorf("reloaded slip-ups = %+v", slips)
	}
}

func TestLoadFallsBackPerDocument(t *testing.T) {
	store := newStore(t)
	onboarded(t, store)

	s := newService(t, brokenSlipUps{store})
	if !s.SetupComplete() {
		t.Error("profile should still load when slip-ups are unreadable")
	}
	if len(s.State().SlipUps) != 0 {
		t.Errorf("SlipUps = %+v, want empty fallback", s.State().SlipUps)
	}
}

func TestQuitPointsMismatch(t *testing.T) {
	store := newStore(t)
	s := onboarded(t, store)
	if _, _, err := s.ConquerCraving(); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveQuitPoints(999); err != nil {
		t.Fatal(err)
	}

	s = newService(t, store)
	if got := s.State().QuitPoints; got != 10 {
		t.Errorf("QuitPoints = %d, want derived 10", got)
	}
	if s.StoredQuitPoints() != 999 {
		t.Errorf("StoredQuitPoints() = %d, want 999", s.StoredQuitPoints())
	}

	vr := s.Validate()
	found := false
	for _, p := range vr.Problems {
		if p.Type == validation.ProblemPointsMismatch {
			found = true
		}
	}
	if !found {
		t.Errorf("Validate() = %s, want a points mismatch", vr.FormatReport())
	}

	if _, err := s.Evaluate(); err != nil {
		t.Fatal(err)
	}
	if stored, _ := store.GetQuitPoints(); stored != 10 {
		t.Errorf("stored quit points after evaluate = %d, want 10", stored)
	}
}

func TestSetDarkMode(t *testing.T) {
	store := newStore(t)
	s := newService(t, store)
	if err := s.SetDarkMode(true); err != nil {
		t.Fatal(err)
	}
	if !newService(t, store).State().DarkMode {
		t.Error("dark mode was not persisted")
	}
}

func TestReset(t *testing.T) {
	store := newStore(t)
	backups := 0
	s := onboarded(t, store, WithBackup(func() (string, error) {
		backups++
		return "/tmp/smokefree-backup.json", nil
	}))
	if _, _, err := s.ConquerCraving(); err != nil {
		t.Fatal(err)
	}

	path, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if backups != 1 || path != "/tmp/smokefree-backup.json" {
		t.Errorf("backup ran %d times, path %q", backups, path)
	}
	if s.SetupComplete() || len(s.State().Conquests) != 0 {
		t.Error("state was not cleared")
	}
	if newService(t, store).SetupComplete() {
		t.Error("store was not cleared")
	}
}

func TestResetAbortsWhenBackupFails(t *testing.T) {
	store := newStore(t)
	s := onboarded(t, store, WithBackup(func() (string, error) {
		return "", errors.New("no space")
	}))

	if _, err := s.Reset(); err == nil {
		t.Fatal("Reset() should fail when the backup fails")
	}
	if !newService(t, store).SetupComplete() {
		t.Error("data must survive a failed backup")
	}
}

func TestSnapshot(t *testing.T) {
	s := onboarded(t, newStore(t))

	v, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if v.Dashboard.DaysSinceQuit != 10 || v.Statistics.DaysSinceQuit != 10 {
		t.Errorf("days since quit = %d / %d, want 10", v.Dashboard.DaysSinceQuit, v.Statistics.DaysSinceQuit)
	}
	if v.Elapsed.ExactHoursSinceLastSlipUp != 252 {
		t.Errorf("ExactHoursSinceLastSlipUp = %v, want 252", v.Elapsed.ExactHoursSinceLastSlipUp)
	}
	if len(v.Milestones) != 13 {
		t.Errorf("milestones = %d, want 13", len(v.Milestones))
	}

	cal, err := s.Calendar(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cal.Year != 2026 || cal.Month != time.March || cal.CleanDays != 11 {
		t.Errorf("calendar = %d-%v with %d clean days", cal.Year, cal.Month, cal.CleanDays)
	}
}
