// Package config loads runtime configuration for the RxEase CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//	-m string   URL of the fallback medicine CSV document
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "12s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://easeaixbackend.onrender.com/api",
//	  "request_timeout": "12s",
//	  "database_path": "rxease.db",
//	  "medicine_csv_url": "https://easeaixbackend.onrender.com/medicine.csv"
//	}
//
// Primary API
//
//   - type Config                     — holds the API endpoint, timeout and local paths
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
