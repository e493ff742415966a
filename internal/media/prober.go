// Package media wraps the ffprobe and ffmpeg command-line tools.
package media

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/vmunix/teaser/internal/policy"
)

var commandContext = exec.CommandContext

// Prober reports stream codecs using ffprobe.
type Prober struct {
	binary string
	log    *slog.Logger
}

// NewProber creates a prober. An empty binary means "ffprobe" on PATH.
func NewProber(binary string, log *slog.Logger) *Prober {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	return &Prober{binary: binary, log: log.With("component", "ffprobe")}
}

// Codec returns the codec name of the first stream of the given kind, or ""
// when the file has no such stream.
func (p *Prober) Codec(ctx context.Context, path string, kind policy.StreamKind) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrEmptyPath
	}

	args := probeArgs(path, kind)
	cmd := commandContext(ctx, p.binary, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("ffprobe %s stream: %w: %s", kind, err, strings.TrimSpace(stderr.String()))
	}

	codec := firstLine(string(out))
	p.log.Debug("probed stream", "path", path, "kind", kind.String(), "codec", codec)
	return codec, nil
}

func probeArgs(path string, kind policy.StreamKind) []string {
	selector := "v:0"
	if kind == policy.Audio {
		selector = "a:0"
	}
	return []string{
		"-v", "error",
		"-select_streams", selector,
		"-show_entries", "stream=codec_name",
		"-of", "default=nw=1:nk=1",
		path,
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}
