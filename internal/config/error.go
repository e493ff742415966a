// internal/config/error.go
package config

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by Discover when no config file exists anywhere
// it looks.
var ErrNotFound = errors.New("no config file found")

// Error reports everything wrong with one config file at once, so
// `teaser config test` can list every problem in a single run.
type Error struct {
	Path    string   // file the problems came from, empty for the embedded default
	Missing []string // ${VAR} references with no value and no default
	Errors  []string // Validate findings, one per line
}

func (e *Error) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path + ":")
	}
	if len(e.Missing) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("missing environment variables: " + strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("validation failed:")
		for _, msg := range e.Errors {
			b.WriteString("\n  - " + msg)
		}
	}
	return b.String()
}

// HasErrors reports whether the file has unresolved variables or failed validation.
func (e *Error) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
