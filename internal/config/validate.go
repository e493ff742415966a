// internal/config/validate.go
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vmunix/teaser/internal/policy"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Log.KeepRuns < 0 {
		errs = append(errs, fmt.Sprintf("log.keep_runs: must not be negative, got %d", c.Log.KeepRuns))
	}

	seen := make(map[string]string)
	for key := range c.Search {
		if strings.EqualFold(key, policy.DefaultLanguage) {
			continue
		}
		if err := checkLanguageKey(key); err != nil {
			errs = append(errs, fmt.Sprintf("search.%s: %v", key, err))
			continue
		}
		lang := policy.LanguageKey(key)
		if prev, ok := seen[lang]; ok {
			errs = append(errs, fmt.Sprintf("search.%s: same language as search.%s", key, prev))
			continue
		}
		seen[lang] = key
	}

	for kind, table := range c.Reencode {
		if _, err := policy.ParseStreamKind(kind); err != nil {
			errs = append(errs, fmt.Sprintf("reencode.%s: %v", kind, err))
			continue
		}
		for source, target := range table {
			if strings.TrimSpace(target) == "" {
				errs = append(errs, fmt.Sprintf("reencode.%s.%s: target codec required", kind, source))
			}
		}
	}

	for kind, codecs := range c.Encoding {
		if _, err := policy.ParseStreamKind(kind); err != nil {
			errs = append(errs, fmt.Sprintf("encoding.%s: %v", kind, err))
			continue
		}
		for codec, params := range codecs {
			for name, value := range params {
				if !scalar(value) {
					errs = append(errs, fmt.Sprintf("encoding.%s.%s.%s: value must be a string, number, or boolean", kind, codec, name))
				}
			}
		}
	}

	if len(errs) == 0 {
		if _, err := c.Policy(); err != nil {
			errs = append(errs, fmt.Sprintf("policy: %v", err))
		}
	}

	return errs
}

// languageCode accepts the code shapes the metadata service reports
// ("fr", "cn", "pt-BR"). Whether x/text knows the language does not matter.
var languageCode = regexp.MustCompile(`^[A-Za-z]{2,8}(?:[-_][A-Za-z0-9]{1,8})*$`)

func checkLanguageKey(key string) error {
	if !languageCode.MatchString(strings.TrimSpace(key)) {
		return fmt.Errorf("invalid language code %q", key)
	}
	return nil
}

func scalar(v any) bool {
	switch v.(type) {
	case string, bool, int, int64, float64:
		return true
	default:
		return false
	}
}
