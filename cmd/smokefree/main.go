package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/cli/backups"
	"github.com/julianstephens/smokefree/internal/cli/settings"
	"github.com/julianstephens/smokefree/internal/cli/system"
	"github.com/julianstephens/smokefree/internal/cli/tracking"
	"github.com/julianstephens/smokefree/internal/cli/views"
	"github.com/julianstephens/smokefree/internal/config"
	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/errors"
	"github.com/julianstephens/smokefree/internal/logger"
	"github.com/julianstephens/smokefree/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"${config_path}"`
	DB      string `name:"db" help:"Database path or PostgreSQL connection string. Overrides the config file. Credentials must NOT be embedded; use the OS keyring, SMOKEFREE_DB_CONNECTION or .pgpass."`
	Backend string `help:"Storage backend (sqlite, json, postgres). Overrides the config file."`
	Debug   bool   `help:"Log debug output to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Set up your quit profile."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Reset  system.ResetCmd  `cmd:"" help:"Erase all progress (a backup is taken first)."`

	Slip    tracking.SlipCmd    `cmd:"" help:"Record a slip-up."`
	Conquer tracking.ConquerCmd `cmd:"" help:"Record a craving you resisted."`
	Why     tracking.WhyCmd     `cmd:"" help:"Show your reason for quitting."`
	Coping  tracking.CopingCmd  `cmd:"" help:"List or walk through coping techniques."`

	Dashboard    views.DashboardCmd    `cmd:"" help:"Show your progress dashboard."`
	Calendar     views.CalendarCmd     `cmd:"" help:"Show the smoke-free calendar for a month."`
	Stats        views.StatsCmd        `cmd:"" help:"Show craving and slip-up statistics."`
	Health       views.HealthCmd       `cmd:"" help:"Show health recovery milestones."`
	Achievements views.AchievementsCmd `cmd:"" help:"Show achievements."`

	Profile struct {
		Show settings.ProfileShowCmd `cmd:"" help:"Show your profile." default:"1"`
		Set  settings.ProfileSetCmd  `cmd:"" help:"Update your profile."`
	} `cmd:"" help:"Manage your quit profile."`
	Theme     settings.ThemeCmd `cmd:"" help:"Show or switch the light/dark theme."`
	ConfigCmd struct {
		Show settings.ConfigShowCmd `cmd:"" help:"Show the effective configuration." default:"1"`
		Init settings.ConfigInitCmd `cmd:"" help:"Write a default config file."`
	} `cmd:"" name:"config" help:"Manage the configuration file."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Report keyring availability."`
	} `cmd:"" help:"Manage the database connection string in the OS keyring."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

// Commands that manage their own storage lifecycle.
var skipLoad = map[string]bool{
	"init":    true,
	"doctor":  true,
	"keyring": true,
	"config":  true,
	"notify":  true,
	"backup":  true,
	"tui":     true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Quit smoking companion: track your smoke-free streak, cravings and recovery."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := utils.ExpandPath(CLI.Config)
	cfg, err := config.Load(configPath)
	if err != nil {
		errors.Fatal(err)
	}
	cli.ApplyDBOverride(&cfg, CLI.DB)
	if CLI.Backend != "" {
		cfg.Storage.Backend = CLI.Backend
	}
	if err := cfg.Validate(); err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:      CLI.Debug || cfg.Logging.Debug,
		ConfigDir:  filepath.Dir(configPath),
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}
	logger.Debug("Starting", "command", ctx.Command(), "backend", cfg.Storage.Backend)

	appCtx := cli.NewContext(cfg, configPath)
	defer appCtx.Close()

	command := strings.Fields(ctx.Command())
	if len(command) > 0 && !skipLoad[command[0]] {
		if err := appCtx.Load(); err != nil {
			appCtx.Close()
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		appCtx.Close()
		errors.Fatal(err)
	}
}
