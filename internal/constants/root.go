package constants

const (
	AppName           = "habitual"
	DefaultConfigPath = "~/.config/habitual/habitual.db"
	Version           = "v0.3.0"

	// DateFormat is the standard calendar-day format used throughout the
	// application (YYYY-MM-DD). Completions, grants, and reports all operate
	// at day granularity; there is no time-of-day component anywhere.
	DateFormat = "2006-01-02"

	// MonthFormat is the report period format (YYYY-MM)
	MonthFormat = "2006-01"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitual-"
	BackupFileSuffix = ".db"

	// ConfigFileName is the optional TOML file next to the database that
	// overrides the reference scoring constants and reward tiers.
	ConfigFileName = "config.toml"
)
