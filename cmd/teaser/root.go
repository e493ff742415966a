package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vmunix/teaser/internal/hook"
	"github.com/vmunix/teaser/internal/library"
)

// lookupEnv reads custom-script event variables.
var lookupEnv hook.LookupFunc = os.LookupEnv

type rootOptions struct {
	configPath string
	logLevel   string
	summary    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "teaser [library_root]",
		Short: "Download trailers for a movie or TV library",
		Long: `teaser - trailer downloader for media libraries

Walks the item folders of a library root ("Title (Year)" for movies,
"Title (Year) {tvdb-ID}" for series) and places "<Title> (<Year>)-trailer.<ext>"
next to each item that does not have one yet.

When started by Radarr or Sonarr as a custom script, the event in the
environment is handled instead and the library argument is ignored.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if ev, ok := hook.Detect(lookupEnv); ok {
				return runHook(ctx, cmd, opts, ev)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return runLibrary(ctx, cmd, opts, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a per-folder summary table after the run")

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("teaser {{.Version}}\n")
	return rootCmd
}

func runHook(ctx context.Context, cmd *cobra.Command, opts *rootOptions, ev hook.Event) error {
	a, err := setup(ctx, cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	h := hook.NewHandler(a.pipeline, a.cfg.YouTube.Enabled(), a.log)
	if code := h.Handle(ctx, ev); code != 0 {
		return &exitError{code: code, msg: fmt.Sprintf("%s %s event failed", ev.Source, ev.Type)}
	}
	return nil
}

func runLibrary(ctx context.Context, cmd *cobra.Command, opts *rootOptions, root string) error {
	a, err := setup(ctx, cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		a.log.Error("library folder does not exist", "path", root)
		return &exitError{code: 1, msg: "library folder does not exist: " + root}
	}
	if !a.cfg.YouTube.Enabled() {
		a.log.Warn("youtube api key is not set, searches will fail")
	}

	lock, err := library.Lock(ctx, root)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			a.log.Warn("release library lock", "error", err)
		}
	}()

	walker := library.NewWalker(afero.NewOsFs(), a.pipeline, a.log)
	sum, err := walker.Run(ctx, root)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.log.Info("successfully downloaded new trailers", "count", sum.Total)
	if opts.summary {
		fmt.Fprintln(cmd.OutOrStdout(), renderSummary(sum))
	}
	return err
}
