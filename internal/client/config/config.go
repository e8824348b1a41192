package config

import "time"

// Config holds runtime settings for the RxEase CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API (includes the /api prefix).
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the local SQLite database holding session state.
//   - MedicineCSVURL: location of the fallback medicine dataset document.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	MedicineCSVURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://easeaixbackend.onrender.com/api"
	c.RequestTimeout = 12 * time.Second
	c.DatabasePath = "rxease.db"
	c.MedicineCSVURL = "https://easeaixbackend.onrender.com/medicine.csv"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
