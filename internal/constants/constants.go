package constants

const (
	AppName           = "gigcal"
	Version           = "v1.0.0"
	DefaultConfigPath = "~/.config/gigcal/config.yaml"
	DefaultDataDir    = "~/.local/share/gigcal"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the standard month format used for range filters (YYYY-MM)
	MonthFormat = "2006-01"

	// Storage keys. One JSON blob per key.
	EventsKey   = "ec-cc-events"
	TagsKey     = "ec-cc-tags"
	SettingsKey = "ec-cc-settings"

	// DefaultColor is assigned to events that arrive without one.
	DefaultColor = "#666666"

	// DefaultFont is the settings font identifier meaning "use the system font".
	DefaultFont = "system"

	// TypeSeparator joins multi-valued category fields in CSV cells.
	TypeSeparator = "、"

	// ExportFilePrefix is the localized label used in export filenames.
	ExportFilePrefix = "演出日历"

	// UTF8BOM prefixes CSV exports so spreadsheet applications detect UTF-8.
	UTF8BOM = "\uFEFF"

	// Backup constants
	BackupDirName    = "backups"
	BackupFilePrefix = "gigcal-"
	BackupFileSuffix = ".json"
	MaxBackups       = 14
)

// Categories is the fixed event category vocabulary. Keys cannot be added or
// removed, only recolored.
var Categories = []string{"Live", "干饭", "旅行", "运动"}

// DefaultCategoryColors maps each fixed category to its default color.
var DefaultCategoryColors = map[string]string{
	"Live": "#FF6B6B",
	"干饭":   "#4ECDC4",
	"旅行":   "#45B7D1",
	"运动":   "#96CEB4",
}

// DefaultPlaces and DefaultCities seed the tag vocabulary on first load.
var (
	DefaultPlaces = []string{"梅赛德斯奔驰文化中心", "静安体育中心"}
	DefaultCities = []string{"上海", "东京", "大阪"}
)

// Palette holds the preset event colors offered by the edit form.
var Palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4",
	"#FFEAA7", "#DDA0DD", "#98D8C8", "#F7DC6F",
}

// CSVHeader is the canonical export header. Column order is part of the
// external contract.
var CSVHeader = []string{"日期", "事件名称", "类型", "地点", "城市", "颜色"}

// LegacyCSVHeader is an older header order still accepted on import.
var LegacyCSVHeader = []string{"日期", "类型", "名称", "地点", "城市", "颜色"}

// IsCategory reports whether name is one of the fixed categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
