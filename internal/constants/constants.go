package constants

const (
	AppName           = "habitflow"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/habitflow/habitflow.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// StorageVersion tags serialized store files and export archives
	StorageVersion = 1

	// DayMillis is the length of a tracked day. All day-boundary math is
	// exact integer arithmetic on millisecond timestamps; a day is always
	// 24 hours from local midnight.
	DayMillis  int64 = 24 * 60 * 60 * 1000
	WeekMillis int64 = 7 * DayMillis

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitflow-"
	BackupFileSuffix = ".json"
)

// Weekday display names, indexed by time.Weekday (0=Sunday).
var (
	DayNames     = [7]string{"S", "M", "T", "W", "T", "F", "S"}
	FullDayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

const (
	DefaultHabitEmoji = "⭐"
	DefaultHabitColor = "#6366F1"
)

// HabitColors is the curated palette offered when creating a habit.
var HabitColors = []string{
	"#6366F1", // indigo
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#EF4444", // red
	"#F97316", // orange
	"#EAB308", // yellow
	"#22C55E", // green
	"#14B8A6", // teal
	"#06B6D4", // cyan
	"#3B82F6", // blue
}

// HabitEmojis is the curated emoji set offered when creating a habit.
var HabitEmojis = []string{
	"⭐", "💪", "🏃", "📚", "💧", "🧘", "💤", "🍎", "✍️", "🎯",
	"🧹", "💊", "🌿", "☕", "🎵", "🧠", "🙏", "🚶", "🏋️", "📝",
}
