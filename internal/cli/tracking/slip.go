package tracking

import (
	"fmt"

	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/tui/forms"
)

// SlipCmd logs a slip-up. Without flags it asks for the details.
type SlipCmd struct {
	Location string `help:"Where it happened (At Home, At Work, In Car, With Coffee, After Meal, During Break, Social Event, During Stress, Other)." short:"l"`
	Strength int    `help:"Craving strength from 1 to 5." short:"s"`
	Quick    bool   `help:"Log without asking for details." short:"q"`
}

func (c *SlipCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Tracker.Profile(); err != nil {
		return err
	}

	values := forms.SlipUpValues{Location: c.Location, Strength: c.Strength}
	if !c.Quick && c.Location == "" && c.Strength == 0 {
		values = forms.DefaultSlipUpValues()
		if err := forms.NewSlipUpForm(&values).Run(); err != nil {
			return fmt.Errorf("slip-up not logged: %w", err)
		}
	}

	slip, unlocked, err := ctx.Tracker.LogSlipUp(values.Location, values.Strength)
	if err != nil {
		return err
	}

	location := slip.Location
	if location == "" {
		location = constants.UnspecifiedLocation
	}
	ctx.Printf("Slip-up logged at %s (%s).\n", slip.Timestamp.Format("15:04"), location)
	ctx.Println()
	ctx.Println(constants.SlipUpMessage)
	ctx.ReportUnlocked(unlocked)
	return nil
}
