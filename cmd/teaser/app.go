package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vmunix/teaser/internal/config"
	"github.com/vmunix/teaser/internal/fetch"
	"github.com/vmunix/teaser/internal/logging"
	"github.com/vmunix/teaser/internal/media"
	"github.com/vmunix/teaser/internal/metadata"
	"github.com/vmunix/teaser/internal/pipeline"
	"github.com/vmunix/teaser/internal/search"
	"github.com/vmunix/teaser/internal/tmdb"
	"github.com/vmunix/teaser/internal/youtube"
)

// builtinConfig is reported as the config source when no file was found.
const builtinConfig = "(built-in defaults)"

// app holds the wired components for one invocation.
type app struct {
	cfg      *config.Config
	run      *logging.Run
	log      *slog.Logger
	cache    *metadata.Cache
	pipeline *pipeline.Pipeline
}

// loadConfig loads path, or the discovered config, or the built-in defaults.
func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		found, err := config.Discover()
		switch {
		case err == nil:
			path = found
		case errors.Is(err, config.ErrNotFound):
			cfg, err := config.LoadDefault()
			return cfg, builtinConfig, err
		default:
			return nil, "", err
		}
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

func setup(ctx context.Context, cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, source, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	run, err := logging.New(logging.Options{
		Level:    cfg.Log.Level,
		Stdout:   cmd.OutOrStdout(),
		Activity: cfg.Log.Activity,
		Dir:      cfg.Log.Dir,
		KeepRuns: cfg.Log.KeepRuns,
	})
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, run: run, log: run.Logger}
	a.log.Debug("configuration loaded", "source", source, "log_file", run.File)

	pol, err := cfg.Policy()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("build policy: %w", err)
	}

	var tmdbClient metadata.TMDB = tmdb.NewClient(cfg.TMDB.APIKey, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
	if cfg.Cache.Path != "" && cfg.TMDB.Enabled() {
		cache, err := metadata.OpenCache(ctx, cfg.Cache.Path)
		if err != nil {
			a.log.Warn("metadata cache unavailable", "path", cfg.Cache.Path, "error", err)
		} else {
			a.cache = cache
			if n, err := cache.Prune(ctx); err == nil && n > 0 {
				a.log.Debug("expired cache entries removed", "count", n)
			}
			tmdbClient = metadata.NewCachedTMDB(tmdbClient, cache, a.log)
		}
	}
	resolver := metadata.NewResolver(tmdbClient, cfg.TMDB.APIKey, a.log)
	if !resolver.Enabled() {
		a.log.Info("tmdb api key not set, metadata lookups disabled")
	}

	yt := youtube.NewClient(cfg.YouTube.APIKey, youtube.WithBaseURL(cfg.YouTube.BaseURL))
	searcher := search.NewSearcher(yt, a.log)

	fetcher := fetch.New(a.log,
		fetch.WithBinary(cfg.YTDLP.Binary),
		fetch.WithFormat(cfg.YTDLP.Format),
		fetch.WithCookiesFromBrowser(cfg.YTDLP.CookiesBrowser),
	)
	acquirer := pipeline.NewAcquirer(
		fetcher,
		media.NewProber(cfg.FFmpeg.FFprobe, a.log),
		media.NewTranscoder(cfg.FFmpeg.FFmpeg, a.log),
		pol,
		cfg.Scratch.Dir,
		a.log,
	)
	a.pipeline = pipeline.New(resolver, searcher, acquirer, pol, a.log)
	return a, nil
}

// Close releases the cache and the log file.
func (a *app) Close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.log.Warn("close metadata cache", "error", err)
		}
	}
	_ = a.run.Close()
}
