package settings

import (
	"fmt"

	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/tui/forms"
	"github.com/julianstephens/smokefree/internal/utils"
)

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Tracker.Profile()
	if err != nil {
		return err
	}
	currency := ctx.Config.Display.Currency

	ctx.Println("Profile:")
	ctx.Printf("  Quit date:           %s\n", p.QuitDate)
	ctx.Printf("  Cigarettes per day:  %d\n", p.DailyCigarettes)
	ctx.Printf("  Cost per pack:       %s\n", utils.FormatMoney(currency, p.CostPerPack))
	ctx.Printf("  Cigarettes per pack: %d\n", p.CigarettesPerPack)
	ctx.Printf("  Cost per cigarette:  %s\n", utils.FormatMoney(currency, p.CostPerCigarette()))
	ctx.Printf("  My why:              %s\n", p.MyWhy)
	return nil
}

// ProfileSetCmd updates only the given fields. With no flags it opens the
// profile form.
type ProfileSetCmd struct {
	QuitDate *string  `help:"Quit date (YYYY-MM-DD)."`
	Daily    *int     `help:"Cigarettes smoked per day before quitting."`
	Cost     *float64 `help:"Cost of one pack."`
	PackSize *int     `help:"Cigarettes per pack."`
	Why      *string  `help:"Your reason for quitting."`
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Tracker.Profile()
	if err != nil {
		return err
	}

	if c.QuitDate == nil && c.Daily == nil && c.Cost == nil && c.PackSize == nil && c.Why == nil {
		today := ctx.Tracker.Now()
		values := forms.FromProfile(p, today)
		if err := forms.NewProfileForm(&values, today).Run(); err != nil {
			return fmt.Errorf("profile not changed: %w", err)
		}
		if p, err = values.ToProfile(); err != nil {
			return err
		}
	}

	if c.QuitDate != nil {
		p.QuitDate = *c.QuitDate
	}
	if c.Daily != nil {
		p.DailyCigarettes = *c.Daily
	}
	if c.Cost != nil {
		p.CostPerPack = *c.Cost
	}
	if c.PackSize != nil {
		p.CigarettesPerPack = *c.PackSize
	}
	if c.Why != nil {
		p.MyWhy = *c.Why
	}

	unlocked, err := ctx.Tracker.UpdateProfile(p)
	if err != nil {
		return err
	}
	ctx.Println("✓ Profile updated")
	ctx.ReportUnlocked(unlocked)
	return nil
}
