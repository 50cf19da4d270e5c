package tracking

import (
	"github.com/julianstephens/smokefree/internal/cli"
)

type WhyCmd struct{}

func (c *WhyCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.Tracker.Profile()
	if err != nil {
		return err
	}
	ctx.Println("❤️  My why")
	ctx.Println()
	ctx.Println(profile.MyWhy)
	return nil
}
