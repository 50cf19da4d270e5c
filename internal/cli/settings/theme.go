package settings

import (
	"github.com/julianstephens/smokefree/internal/cli"
)

// ThemeCmd shows or changes the TUI theme.
type ThemeCmd struct {
	Dark  bool `help:"Use the dark theme." xor:"theme"`
	Light bool `help:"Use the light theme." xor:"theme"`
}

func (c *ThemeCmd) Run(ctx *cli.Context) error {
	if !c.Dark && !c.Light {
		theme := "light"
		if ctx.Tracker.State().DarkMode {
			theme = "dark"
		}
		ctx.Printf("Theme: %s\n", theme)
		return nil
	}

	if err := ctx.Tracker.SetDarkMode(c.Dark); err != nil {
		return err
	}
	if c.Dark {
		ctx.Println("✓ Dark theme enabled")
	} else {
		ctx.Println("✓ Light theme enabled")
	}
	return nil
}
