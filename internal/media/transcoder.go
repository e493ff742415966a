package media

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vmunix/teaser/internal/policy"
)

// Job describes one transcode: Input is rewritten to Output following Plan.
type Job struct {
	Input  string
	Output string
	Plan   policy.Plan
}

// Transcoder re-encodes files using ffmpeg.
type Transcoder struct {
	binary string
	log    *slog.Logger
}

// NewTranscoder creates a transcoder. An empty binary means "ffmpeg" on PATH.
func NewTranscoder(binary string, log *slog.Logger) *Transcoder {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Transcoder{binary: binary, log: log.With("component", "ffmpeg")}
}

// Transcode runs ffmpeg for job and blocks until it exits.
func (t *Transcoder) Transcode(ctx context.Context, job Job) error {
	if job.Input == "" || job.Output == "" {
		return ErrEmptyPath
	}
	if !job.Plan.NeedsReencode() {
		return ErrNothingToTranscode
	}

	args := transcodeArgs(job)
	t.log.Info("transcode started", "input", job.Input, "output", job.Output,
		"video", job.Plan.Video.Target, "audio", job.Plan.Audio.Target)

	start := time.Now()
	cmd := commandContext(ctx, t.binary, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.String()))
	}

	t.log.Info("transcode finished", "output", job.Output, "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// transcodeArgs builds "-i in -c:v T [-p v]... -c:a T [-p v]... -y out".
func transcodeArgs(job Job) []string {
	args := []string{"-hide_banner", "-loglevel", "error", "-i", job.Input}
	for _, s := range job.Plan.Streams() {
		flag := "-c:v"
		if s.Kind == policy.Audio {
			flag = "-c:a"
		}
		args = append(args, flag, s.Target)
		if s.IsCopy() {
			continue
		}
		for _, p := range s.Params {
			args = append(args, "-"+strings.TrimPrefix(p.Name, "-"), p.Value)
		}
	}
	return append(args, "-y", job.Output)
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
