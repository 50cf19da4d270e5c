package tracking

import (
	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/coping"
)

// CopingCmd lists the techniques, or walks through one.
type CopingCmd struct {
	Technique string `arg:"" optional:"" help:"Technique id or title."`
}

func (c *CopingCmd) Run(ctx *cli.Context) error {
	if c.Technique == "" {
		ctx.Println("Coping techniques:")
		ctx.Println()
		for _, t := range coping.All() {
			ctx.Printf("  %s. %-26s %-12s %s\n", t.ID, t.Title, t.Duration, t.Description)
		}
		ctx.Println()
		ctx.Println("Run 'smokefree coping <id>' for step-by-step instructions.")
		return nil
	}

	t, err := coping.Find(c.Technique)
	if err != nil {
		return err
	}
	ctx.Printf("%s (%s, %s)\n", t.Title, t.Category, t.Duration)
	ctx.Println(t.Description)
	ctx.Println()

	s := coping.NewSession(t)
	for {
		ctx.Printf("  %d. %s\n", s.Step()+1, s.Current())
		if !s.Next() {
			break
		}
	}
	return nil
}
