package constants

import "time"

const (
	AppName            = "smokefree"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/smokefree"
	DefaultConfigPath  = "~/.config/smokefree/config.toml"
	DefaultDBPath      = "~/.config/smokefree/smokefree.db"
	DefaultJSONPath    = "~/.config/smokefree/smokefree.json"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is used by the calendar view (YYYY-MM)
	MonthFormat = "2006-01"

	// Storage backends
	BackendSQLite   = "sqlite"
	BackendJSON     = "json"
	BackendPostgres = "postgres"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "smokefree-"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "smokefree-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.smokefree"
	TrayAppExecutable      = "smokefree-tray"
)
