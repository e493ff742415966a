// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig holds an explicit config file path. When set it must exist.
const EnvConfig = "TEASER_CONFIG"

// SystemPath is the machine-wide config file, checked last.
const SystemPath = "/etc/teaser/config.toml"

// DefaultPath is where `teaser config init` writes and where a per-user
// config is looked up: $XDG_CONFIG_HOME/teaser/config.toml, falling back to
// ~/.config. Without a home directory it is the working directory.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "teaser", "config.toml")
}

// Candidates lists the implicit config locations in lookup order: the
// working directory, the per-user file, then SystemPath.
func Candidates() []string {
	return []string{"./config.toml", DefaultPath(), SystemPath}
}

// Discover returns the config file teaser should load. EnvConfig wins when
// set; otherwise the first existing entry of Candidates is used. Finding
// nothing wraps ErrNotFound so callers can fall back to the embedded default.
func Discover() (string, error) {
	if explicit := os.Getenv(EnvConfig); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfig, explicit, err)
		}
		return explicit, nil
	}

	candidates := Candidates()
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w (looked in %s)", ErrNotFound, strings.Join(candidates, ", "))
}
