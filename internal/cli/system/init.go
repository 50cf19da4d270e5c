package system

import (
	"fmt"

	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/models"
	"github.com/julianstephens/smokefree/internal/tui/forms"
)

// InitCmd creates the store and runs onboarding. With --daily, --cost and
// --why all given it runs without prompting.
type InitCmd struct {
	QuitDate string  `help:"Quit date (YYYY-MM-DD). Defaults to today."`
	Daily    int     `help:"Cigarettes smoked per day before quitting."`
	Cost     float64 `help:"Cost of one pack."`
	PackSize int     `help:"Cigarettes per pack." default:"20"`
	Why      string  `help:"Your reason for quitting."`
	Force    bool    `help:"Run onboarding again, replacing the existing profile."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized smokefree storage at: %s\n", ctx.Store.GetConfigPath())

	ctx.Tracker.Load()
	if ctx.Tracker.SetupComplete() && !c.Force {
		ctx.Println("Setup is already complete. Use --force to replace your profile.")
		return nil
	}

	profile, err := c.profile(ctx)
	if err != nil {
		return err
	}

	unlocked, err := ctx.Tracker.Onboard(profile)
	if err != nil {
		return err
	}

	ctx.Printf("✓ You're all set. Smoke-free since %s.\n", profile.QuitDate)
	ctx.ReportUnlocked(unlocked)
	return nil
}

func (c *InitCmd) profile(ctx *cli.Context) (models.Profile, error) {
	today := ctx.Tracker.Now()
	packSize := c.PackSize
	if packSize == 0 {
		packSize = constants.DefaultCigarettesPerPack
	}

	if c.Daily > 0 && c.Cost > 0 && c.Why != "" {
		quitDate := c.QuitDate
		if quitDate == "" {
			quitDate = today.Format(constants.DateFormat)
		}
		return models.Profile{
			QuitDate:          quitDate,
			DailyCigarettes:   c.Daily,
			CostPerPack:       c.Cost,
			CigarettesPerPack: packSize,
			MyWhy:             c.Why,
		}, nil
	}

	values := forms.FromProfile(models.Profile{
		QuitDate:          c.QuitDate,
		DailyCigarettes:   c.Daily,
		CostPerPack:       c.Cost,
		CigarettesPerPack: packSize,
		MyWhy:             c.Why,
	}, today)
	if err := forms.NewProfileForm(&values, today).Run(); err != nil {
		return models.Profile{}, fmt.Errorf("onboarding cancelled: %w", err)
	}
	return values.ToProfile()
}
