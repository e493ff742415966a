// Package fetch downloads a single video with yt-dlp.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vmunix/teaser/internal/config"
)

var commandContext = exec.CommandContext

// WatchURL is the page URL handed to yt-dlp for a video id.
const WatchURL = "https://www.youtube.com/watch?v="

// extPlaceholder is the yt-dlp output template field for the final extension.
const extPlaceholder = "%(ext)s"

// Fetcher wraps the yt-dlp binary.
type Fetcher struct {
	binary         string
	format         string
	cookiesBrowser string
	log            *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBinary overrides the yt-dlp binary.
func WithBinary(binary string) Option {
	return func(f *Fetcher) {
		if binary != "" {
			f.binary = binary
		}
	}
}

// WithFormat overrides the format selector.
func WithFormat(format string) Option {
	return func(f *Fetcher) {
		if format != "" {
			f.format = format
		}
	}
}

// WithCookiesFromBrowser passes --cookies-from-browser to yt-dlp.
func WithCookiesFromBrowser(browser string) Option {
	return func(f *Fetcher) {
		f.cookiesBrowser = strings.TrimSpace(browser)
	}
}

// New creates a Fetcher.
func New(log *slog.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		binary: "yt-dlp",
		format: config.DefaultFormat,
		log:    log.With("component", "ytdlp"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Template returns the yt-dlp output template for baseName inside dir. Percent
// signs in baseName are escaped so yt-dlp does not read them as fields.
func Template(dir, baseName string) string {
	return filepath.Join(dir, strings.ReplaceAll(baseName, "%", "%%")+"."+extPlaceholder)
}

// Fetch downloads videoID to the output template and returns the path of the
// file yt-dlp wrote.
func (f *Fetcher) Fetch(ctx context.Context, videoID, template string) (string, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return "", ErrEmptyVideoID
	}

	args := f.args(videoID, template)
	f.log.Info("download started", "video_id", videoID)
	f.log.Debug("yt-dlp command", "args", args)

	cmd := commandContext(ctx, f.binary, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("yt-dlp %s: %w: %s", videoID, err, strings.TrimSpace(stderr.String()))
	}

	path := printedPath(out)
	if path == "" || !exists(path) {
		f.log.Debug("printed path unusable, scanning output dir", "printed", path)
		path, err = findOutput(template)
		if err != nil {
			return "", err
		}
	}

	f.log.Info("download finished", "video_id", videoID, "path", path)
	return path, nil
}

func (f *Fetcher) args(videoID, template string) []string {
	args := []string{
		"--no-progress",
		"--no-playlist",
		"-f", f.format,
		"-o", template,
	}
	if f.cookiesBrowser != "" {
		args = append(args, "--cookies-from-browser", f.cookiesBrowser)
	}
	return append(args, "--print", "after_move:filepath", WatchURL+videoID)
}

// printedPath returns the last non-empty stdout line.
func printedPath(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// findOutput looks for a finished file whose name starts with the template's
// unescaped base name.
func findOutput(template string) (string, error) {
	dir := filepath.Dir(template)
	prefix := strings.TrimSuffix(filepath.Base(template), extPlaceholder)
	prefix = strings.ReplaceAll(prefix, "%%", "%")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scan output dir: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasSuffix(name, ".part") || strings.HasSuffix(name, ".ytdl") {
			continue
		}
		return filepath.Join(dir, name), nil
	}
	return "", ErrNoOutput
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
