// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) returning defaults; Load layers file and env on top.
// - The department list, style vocabulary and column aliases live here as
//   immutable configuration handed to the engine at construction, never as
//   mutable process-wide state.
// - External errors must be wrapped via this package's error helpers.
package config

// Store kinds.
const (
	StoreMemory = "memory"
	StoreSheets = "sheets"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Store selects the record store backend: memory or sheets.
	Store string `koanf:"store"`

	// SpreadsheetID identifies the backing Google Sheet (store=sheets).
	SpreadsheetID string `koanf:"spreadsheet_id"`

	// SheetRange is the A1 range holding the records, header row first.
	SheetRange string `koanf:"sheet_range"`

	// CredentialsFile points at the service-account JSON (store=sheets).
	CredentialsFile string `koanf:"credentials_file"`

	// Departments enumerates the known departments. Records with other
	// labels still normalize; this list drives the "all departments"
	// default and the entry surface's choices.
	Departments []string `koanf:"departments"`

	// StyleVocabulary seeds the entry surface's checklist. Tags outside
	// it are welcome; the engine never enforces a fixed vocabulary.
	StyleVocabulary []string `koanf:"style_vocabulary"`

	// ExtraAliases adds column aliases per semantic field on top of the
	// built-in ones, so a renamed sheet column only needs configuration.
	ExtraAliases map[string][]string `koanf:"extra_aliases"`
}

// New creates a Config with defaults mirroring the original deployment.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		Addr:       ":9080",
		Store:      StoreMemory,
		SheetRange: "シート1!A:F",
		Departments: []string{
			"情報処理科",
			"Webデザイン科",
			"電気工学科",
		},
		StyleVocabulary: []string{
			"教科書中心",
			"スライド利用",
			"実習あり",
			"グループワーク",
			"課題提出あり",
		},
	}
}
