// internal/config/write.go
package config

import (
	_ "embed"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// WriteDefault writes the example config to the specified path.
// Creates parent directories if needed.
func WriteDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

// Encode serializes the effective config as TOML. API keys are masked.
func (c *Config) Encode(w io.Writer) error {
	masked := *c
	masked.TMDB.APIKey = mask(c.TMDB.APIKey)
	masked.YouTube.APIKey = mask(c.YouTube.APIKey)
	return toml.NewEncoder(w).Encode(masked)
}

func mask(key string) string {
	if !KeySet(key) {
		return key
	}
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
