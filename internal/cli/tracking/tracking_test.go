package tracking

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/config"
	"github.com/julianstephens/smokefree/internal/constants"
	apperrors "github.com/julianstephens/smokefree/internal/errors"
	"github.com/julianstephens/smokefree/internal/models"
	"github.com/julianstephens/smokefree/internal/storage"
	"github.com/julianstephens/smokefree/internal/tracker"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func setupTestContext(t *testing.T, onboard bool) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "smokefree.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	svc := tracker.New(store,
		tracker.WithClock(func() time.Time { return testNow }),
		tracker.WithLocation(time.UTC),
	)
	svc.Load()
	if onboard {
		_, err := svc.Onboard(models.Profile{
			QuitDate:          "2026-03-05",
			DailyCigarettes:   10,
			CostPerPack:       10,
			CigarettesPerPack: 20,
			MyWhy:             "my kids",
		})
		if err != nil {
			t.Fatalf("Onboard() error = %v", err)
		}
	}
	out := &bytes.Buffer{}
	return &cli.Context{Store: store, Tracker: svc, Config: config.DefaultConfig(), Out: out}, out
}

func TestSlipCmd(t *testing.T) {
	tests := []struct {
		name         string
		cmd          SlipCmd
		wantErr      bool
		wantLocation string
	}{
		{name: "quick", cmd: SlipCmd{Quick: true}, wantLocation: constants.UnspecifiedLocation},
		{name: "with details", cmd: SlipCmd{Location: "With Coffee", Strength: 4}, wantLocation: "With Coffee"},
		{name: "strength only", cmd: SlipCmd{Strength: 2}, wantLocation: constants.UnspecifiedLocation},
		{name: "unknown location", cmd: SlipCmd{Location: "On the moon"}, wantErr: true},
		{name: "strength out of range", cmd: SlipCmd{Location: "At Home", Strength: 9}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := setupTestContext(t, true)
			err := tt.cmd.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			slips := ctx.Tracker.State().SlipUps
			if tt.wantErr {
				if len(slips) != 0 {
					t.Errorf("rejected slip-up was stored: %+v", slips)
				}
				return
			}
			if len(slips) != 1 {
				t.Fatalf("got %d slip-ups, want 1", len(slips))
			}
			if !strings.Contains(out.String(), "("+tt.wantLocation+")") {
				t.Errorf("output missing location %q:\n%s", tt.wantLocation, out.String())
			}
			if !strings.Contains(out.String(), constants.SlipUpMessage) {
				t.Errorf("output missing encouragement:\n%s", out.String())
			}
		})
	}
}

func TestSlipCmd_RequiresSetup(t *testing.T) {
	ctx, _ := setupTestContext(t, false)
	err := (&SlipCmd{Quick: true}).Run(ctx)
	if !errors.Is(err, apperrors.ErrSetupIncomplete) {
		t.Errorf("Run() error = %v, want ErrSetupIncomplete", err)
	}
}

func TestConquerCmd(t *testing.T) {
	ctx, out := setupTestContext(t, true)

	for i := 0; i < 3; i++ {
		if err := (&ConquerCmd{}).Run(ctx); err != nil {
			t.Fatalf("conquer #%d failed: %v", i+1, err)
		}
	}

	if got := ctx.Tracker.State().QuitPoints; got != 3*constants.ConquestPoints {
		t.Errorf("QuitPoints = %d, want %d", got, 3*constants.ConquestPoints)
	}
	if !strings.Contains(out.String(), "+10 points (30 total, 3 cravings beaten)") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestWhyCmd(t *testing.T) {
	ctx, out := setupTestContext(t, true)
	if err := (&WhyCmd{}).Run(ctx); err != nil {
		t.Fatalf("why failed: %v", err)
	}
	if !strings.Contains(out.String(), "my kids") {
		t.Errorf("output missing reason:\n%s", out.String())
	}
}

func TestCopingCmd(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		ctx, out := setupTestContext(t, false)
		if err := (&CopingCmd{}).Run(ctx); err != nil {
			t.Fatalf("coping failed: %v", err)
		}
		for _, title := range []string{"4-7-8 Breathing", "Quick Walk", "Playlist Power"} {
			if !strings.Contains(out.String(), title) {
				t.Errorf("list missing %q", title)
			}
		}
	})

	t.Run("by title", func(t *testing.T) {
		ctx, out := setupTestContext(t, false)
		if err := (&CopingCmd{Technique: "quick walk"}).Run(ctx); err != nil {
			t.Fatalf("coping failed: %v", err)
		}
		if !strings.Contains(out.String(), "  1. ") {
			t.Errorf("expected numbered steps:\n%s", out.String())
		}
	})

	t.Run("unknown", func(t *testing.T) {
		ctx, _ := setupTestContext(t, false)
		if err := (&CopingCmd{Technique: "juggling"}).Run(ctx); err == nil {
			t.Error("expected error for unknown technique")
		}
	})
}
