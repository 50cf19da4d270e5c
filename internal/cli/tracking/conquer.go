package tracking

import (
	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/utils"
)

// ConquerCmd records a resisted craving.
type ConquerCmd struct{}

func (c *ConquerCmd) Run(ctx *cli.Context) error {
	conquest, unlocked, err := ctx.Tracker.ConquerCraving()
	if err != nil {
		return err
	}

	state := ctx.Tracker.State()
	ctx.Printf("💪 Craving conquered! +%d points (%s total, %s cravings beaten)\n",
		conquest.Points, utils.FormatCount(state.QuitPoints), utils.FormatCount(len(state.Conquests)))
	ctx.ReportUnlocked(unlocked)
	return nil
}
