package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/teaser/internal/config"
	"github.com/vmunix/teaser/internal/policy"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	configCmd.AddCommand(newConfigTestCommand(opts))
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(opts))
	return configCmd
}

func newConfigTestCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "test [path]",
		Short: "Validate configuration file",
		Long:  "Validates config.toml syntax, environment variable substitution and the search and re-encode policy tables.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := opts.configPath
			if len(args) > 0 {
				path = args[0]
			}

			cfg, source, err := loadConfig(path)
			if err != nil {
				var configErr *config.Error
				if errors.As(err, &configErr) {
					fmt.Fprintf(out, "Validating %s...\n\n", configErr.Path)
					printConfigErrors(out, configErr)
					return &exitError{code: 1, msg: "configuration invalid"}
				}
				return fmt.Errorf("failed to load config: %w", err)
			}

			fmt.Fprintf(out, "Validating %s...\n\n", source)
			if err := printConfigSummary(out, cfg); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nConfiguration valid!")
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteDefault(path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			fmt.Fprintln(cmd.OutOrStdout(), "Set TMDB_API_KEY and YOUTUBE_API_KEY or edit the file to add your keys.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (keys masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, source, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) error {
	pol, err := cfg.Policy()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Log:        %s", cfg.Log.Level)
	if cfg.Log.Activity {
		fmt.Fprintf(w, " (files in %s, keep %d)", cfg.Log.Dir, cfg.Log.KeepRuns)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  TMDB:       %s\n", enabled(cfg.TMDB.Enabled()))
	fmt.Fprintf(w, "  YouTube:    %s\n", enabled(cfg.YouTube.Enabled()))
	fmt.Fprintf(w, "  Languages:  %s\n", strings.Join(pol.Languages(), ", "))
	fmt.Fprintf(w, "  Re-encode:  %d video, %d audio rules\n", pol.RuleCount(policy.Video), pol.RuleCount(policy.Audio))
	if cfg.Cache.Path != "" {
		fmt.Fprintf(w, "  Cache:      %s\n", cfg.Cache.Path)
	}
	return nil
}

func enabled(ok bool) string {
	if ok {
		return "enabled"
	}
	return "disabled (no api key)"
}
