package config

import "os"

// Default values applied before files and environment are read.
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultExportFileName = "study_backup.json"
)

// DefaultSeedTitles is the curriculum a new collection starts with when no
// seed titles are configured.
var DefaultSeedTitles = []string{
	"שולחן ערוך - סימן א'",
	"משנה ברורה - סימן א'",
	"מסכת ברכות",
	"מסילת ישרים",
	"תניא",
	"בצור ירום",
	"דרך השם",
	"זוהר - מתוק מדבש",
}

// DefaultExportDir returns the platform temporary directory.
func DefaultExportDir() string {
	return os.TempDir()
}
