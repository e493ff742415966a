// Package logging builds the process logger: a slog text handler on stdout,
// optionally mirrored into a timestamped per-run log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RunFileLayout is the time layout of per-run log file names.
const RunFileLayout = "20060102_150405"

// Options configures New.
type Options struct {
	Level    string
	Stdout   io.Writer // defaults to os.Stdout
	Activity bool      // write a per-run log file into Dir
	Dir      string
	KeepRuns int // runs to keep, 0 keeps all
	Now      func() time.Time
}

// Run is the logger for one process invocation.
type Run struct {
	Logger *slog.Logger
	ID     string
	File   string // empty unless Activity was set

	file *lumberjack.Logger
}

// New creates the run logger. Every record carries the run_id attribute.
func New(opts Options) (*Run, error) {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	run := &Run{ID: uuid.NewString()}

	if opts.Activity {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		run.File = filepath.Join(opts.Dir, now().Format(RunFileLayout)+".txt")
		// Prune below must see the current run file.
		f, err := os.OpenFile(run.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		_ = f.Close()
		run.file = &lumberjack.Logger{
			Filename:   run.File,
			MaxSize:    10,
			MaxBackups: 2,
		}
		out = io.MultiWriter(out, run.file)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	})
	run.Logger = slog.New(handler).With("run_id", run.ID)

	if opts.Activity && opts.KeepRuns > 0 {
		if err := Prune(opts.Dir, opts.KeepRuns); err != nil {
			run.Logger.Warn("log pruning failed", "dir", opts.Dir, "error", err)
		}
	}

	return run, nil
}

// Close flushes and closes the per-run file, if any.
func (r *Run) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// ParseLevel maps a config level name to a slog level; unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything. Used by tests and
// components constructed without a logger.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
