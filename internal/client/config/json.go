package config

import (
	"encoding/json"
	"os"

	"github.com/Aneeb1231/rxease/internal/flagx"
	"github.com/Aneeb1231/rxease/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "12s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
	MedicineCSVURL string         `json:"medicine_csv_url"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. When no path is given, nothing happens.
// Only non-zero JSON values override; read or unmarshal errors panic so a
// broken config file is noticed immediately.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.MedicineCSVURL != "" {
		cfg.MedicineCSVURL = jc.MedicineCSVURL
	}
}
