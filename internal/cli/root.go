package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/smokefree/internal/backup"
	"github.com/julianstephens/smokefree/internal/config"
	"github.com/julianstephens/smokefree/internal/logger"
	"github.com/julianstephens/smokefree/internal/models"
	"github.com/julianstephens/smokefree/internal/notifier"
	"github.com/julianstephens/smokefree/internal/storage"
	"github.com/julianstephens/smokefree/internal/tracker"
)

type Context struct {
	Store      storage.Provider
	Tracker    *tracker.Service
	Config     config.Config
	ConfigPath string

	// Out and In default to stdout and stdin.
	Out io.Writer
	In  io.Reader
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Stdin() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Load opens the store, reads state and applies any unlocks that time alone
// has earned since the last run.
func (c *Context) Load() error {
	if err := c.Open(); err != nil {
		return err
	}
	if err := c.Store.Load(); err != nil {
		return err
	}
	return c.refresh()
}

// InitAndLoad is Load for a store that may not exist yet.
func (c *Context) InitAndLoad() error {
	if err := c.Open(); err != nil {
		return err
	}
	if err := c.Store.Init(); err != nil {
		return err
	}
	return c.refresh()
}

func (c *Context) refresh() error {
	c.Tracker.Load()
	unlocked, err := c.Tracker.Evaluate()
	if err != nil {
		return err
	}
	c.ReportUnlocked(unlocked)
	return nil
}

// BackupManager returns a manager for file-backed stores.
func (c *Context) BackupManager() (*backup.Manager, error) {
	if err := c.Open(); err != nil {
		return nil, err
	}
	return backup.NewManager(c.Store.GetConfigPath(), c.Store.Backend())
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr, err := c.BackupManager()
	if err != nil {
		logger.Debug("Automatic backup skipped", "reason", err)
		return
	}
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Notifier returns the tray notifier, or a no-op when notifications are off.
func (c *Context) Notifier() notifier.Sender {
	if !c.Config.Notifications.Enabled {
		return notifier.Nop{}
	}
	return notifier.New()
}

// ReportUnlocked prints a line per freshly unlocked achievement.
func (c *Context) ReportUnlocked(unlocked []models.Achievement) {
	for _, a := range unlocked {
		c.Printf("%s Achievement unlocked: %s (%s)\n", a.Icon, a.Name, a.Description)
	}
}

// Confirm asks a yes/no question on stdin. Anything but y/yes is a no.
func (c *Context) Confirm(prompt string) (bool, error) {
	c.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(c.Stdin())
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
