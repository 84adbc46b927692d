// Package efconfig loads user preferences for the efrepl command-line tool
// from a hujson (JSON-with-comments) file.
package efconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds CLI preferences persisted across sessions.
type Config struct {
	// HistorySize caps how many REPL history lines are kept.
	HistorySize int `json:"history_size,omitempty"` //nolint:tagliatelle // snake_case for config file
	// DefaultUpperBound is used by efrepl when a session starts without
	// an explicit -u/--upper-bound flag.
	DefaultUpperBound uint64 `json:"default_upper_bound,omitempty"` //nolint:tagliatelle
}

// Default returns the built-in configuration used when no file is present.
func Default() Config {
	return Config{HistorySize: 500, DefaultUpperBound: 1 << 20}
}

// Path returns the default config file path, ~/.efrepl.json.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".efrepl.json")
}

// Load reads Config from path, falling back to Default() if the file does
// not exist. path may contain JS-style comments and trailing commas; it is
// standardized to plain JSON before decoding.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}
