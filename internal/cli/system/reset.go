package system

import (
	"github.com/julianstephens/smokefree/internal/cli"
)

// ResetCmd wipes every document after taking a backup.
type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ctx.Println("⚠️  WARNING: This deletes your profile, slip-ups, conquests and achievements.")
		ok, err := ctx.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Reset cancelled.")
			return nil
		}
	}

	backupPath, err := ctx.Tracker.Reset()
	if err != nil {
		return err
	}

	if backupPath != "" {
		ctx.Printf("✓ Backup saved to %s\n", backupPath)
	}
	ctx.Println("✓ All data has been reset. Run 'smokefree init' to start again.")
	return nil
}
