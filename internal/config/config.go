// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// PlaceholderKey is the API key value shipped in the default config. A key
// equal to it counts as unset.
const PlaceholderKey = "YOUR_API_KEY"

// DefaultFormat is the yt-dlp format selector: a pre-merged MP4-compatible
// stream first, then any best-effort combination.
const DefaultFormat = "bv*[ext=mp4]+ba[ext=m4a]/b[ext=mp4] / bv*+ba/b"

// Config is the root configuration structure.
type Config struct {
	Log      LogConfig                            `toml:"log"`
	TMDB     TMDBConfig                           `toml:"tmdb"`
	YouTube  YouTubeConfig                        `toml:"youtube"`
	YTDLP    YTDLPConfig                          `toml:"ytdlp"`
	FFmpeg   FFmpegConfig                         `toml:"ffmpeg"`
	Cache    CacheConfig                          `toml:"cache"`
	Scratch  ScratchConfig                        `toml:"scratch"`
	Search   map[string]SearchConfig              `toml:"search"`
	Reencode map[string]map[string]string         `toml:"reencode"`
	Encoding map[string]map[string]map[string]any `toml:"encoding"`

	// paramOrder records encoder parameter names per "kind.codec" in file order.
	paramOrder map[string][]string
}

type LogConfig struct {
	Level    string `toml:"level"`
	Activity bool   `toml:"activity"`
	Dir      string `toml:"dir"`
	KeepRuns int    `toml:"keep_runs"`
}

type TMDBConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// Enabled reports whether a real TMDB key is configured.
func (c TMDBConfig) Enabled() bool { return KeySet(c.APIKey) }

type YouTubeConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// Enabled reports whether a real YouTube Data API key is configured.
func (c YouTubeConfig) Enabled() bool { return KeySet(c.APIKey) }

type YTDLPConfig struct {
	Binary         string `toml:"binary"`
	CookiesBrowser string `toml:"cookies_browser"`
	Format         string `toml:"format"`
}

type FFmpegConfig struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// CacheConfig enables the metadata cache when Path is set.
type CacheConfig struct {
	Path string `toml:"path"`
}

// ScratchConfig selects where per-item scratch directories are created.
// Empty means the OS temp dir.
type ScratchConfig struct {
	Dir string `toml:"dir"`
}

type SearchConfig struct {
	UseOriginalTitle bool   `toml:"use_original_title"`
	Keywords         string `toml:"keywords"`
}

// KeySet reports whether key is neither empty nor the placeholder.
func KeySet(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != PlaceholderKey
}

// Load reads, parses, and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// environment substitution and defaults but skipping validation.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(path, string(data))
}

// LoadDefault parses the embedded default configuration. It is used when no
// config file exists; environment substitution still applies.
func LoadDefault() (*Config, error) {
	cfg, err := parse("(embedded)", defaultConfig)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: "(embedded)", Errors: errs}
	}
	return cfg, nil
}

func parse(path, data string) (*Config, error) {
	content, missing := substituteEnvVars(data)
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.paramOrder = encodingKeyOrder(md)
	cfg.applyDefaults()
	return &cfg, nil
}

// encodingKeyOrder collects [encoding.<kind>.<codec>] parameter names in the
// order they appear in the file.
func encodingKeyOrder(md toml.MetaData) map[string][]string {
	order := make(map[string][]string)
	for _, key := range md.Keys() {
		if len(key) != 4 || key[0] != "encoding" {
			continue
		}
		table := key[1] + "." + key[2]
		order[table] = append(order[table], key[3])
	}
	return order
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Dir == "" {
		c.Log.Dir = DefaultLogDir()
	}
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = "https://api.themoviedb.org"
	}
	if c.YouTube.BaseURL == "" {
		c.YouTube.BaseURL = "https://www.googleapis.com"
	}
	if c.YTDLP.Binary == "" {
		c.YTDLP.Binary = "yt-dlp"
	}
	if c.YTDLP.Format == "" {
		c.YTDLP.Format = DefaultFormat
	}
	if c.FFmpeg.FFmpeg == "" {
		c.FFmpeg.FFmpeg = "ffmpeg"
	}
	if c.FFmpeg.FFprobe == "" {
		c.FFmpeg.FFprobe = "ffprobe"
	}
	if c.Search == nil {
		c.Search = map[string]SearchConfig{}
	}
	if _, ok := c.Search["default"]; !ok {
		c.Search["default"] = SearchConfig{Keywords: "trailer"}
	}
}

// DefaultLogDir returns the XDG state directory used for per-run log files.
func DefaultLogDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "teaser", "logs")
}
