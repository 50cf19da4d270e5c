package views

import (
	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/engine"
	"github.com/julianstephens/smokefree/internal/models"
	"github.com/julianstephens/smokefree/internal/utils"
)

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *cli.Context) error {
	achievements, err := ctx.Tracker.Achievements()
	if err != nil {
		return err
	}
	state := ctx.Tracker.State()

	ctx.Printf("🏅 %d of %d achievements unlocked (%s), %s quit points\n\n",
		models.UnlockedCount(achievements), len(achievements),
		utils.FormatPercent(engine.CompletionPercent(achievements)), utils.FormatCount(state.QuitPoints))

	for _, a := range achievements {
		if a.Unlocked {
			ctx.Printf("  %s %-28s %s (unlocked %s)\n", a.Icon, a.Name, a.Description, a.UnlockedAt.Format("2006-01-02"))
			continue
		}
		ctx.Printf("  🔒 %-28s %s\n", a.Name, a.Description)
	}
	return nil
}
