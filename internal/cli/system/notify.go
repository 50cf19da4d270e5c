package system

import (
	"fmt"

	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/notifier"
)

// NotifyCmd sends a message through the tray app. Useful to check the tray
// is reachable.
type NotifyCmd struct {
	Message string `arg:"" optional:"" help:"Text to show." default:"smokefree notifications are working"`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if !ctx.Config.Notifications.Enabled {
		ctx.Println("Notifications are disabled in the config ([notifications] enabled = false).")
		return nil
	}
	if err := notifier.New().Notify(c.Message); err != nil {
		return fmt.Errorf("notification failed: %w", err)
	}
	ctx.Println("✓ Notification sent")
	return nil
}
