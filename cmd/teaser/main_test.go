package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/teaser/internal/config"
)

// runCLI executes the root command with args and the given event environment.
func runCLI(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	original := lookupEnv
	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	t.Cleanup(func() { lookupEnv = original })

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// testConfig writes the default config and isolates discovery and lock files.
func testConfig(t *testing.T) string {
	t.Helper()
	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvConfig, "")
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, config.WriteDefault(path))
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return 1
}

func TestRoot_NoArgsPrintsUsage(t *testing.T) {
	cfg := testConfig(t)

	out, err := runCLI(t, nil, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "teaser [library_root]")
}

func TestRoot_MissingLibrary(t *testing.T) {
	cfg := testConfig(t)

	out, err := runCLI(t, nil, "--config", cfg, filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out, "library folder does not exist")
}

func TestRoot_LibraryRunWithSummary(t *testing.T) {
	cfg := testConfig(t)
	root := t.TempDir()
	folder := filepath.Join(root, "Up (2009)")
	require.NoError(t, os.Mkdir(folder, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "Up (2009)-trailer.mp4"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "Not A Movie"), 0o755))

	out, err := runCLI(t, nil, "--config", cfg, "--summary", root)
	require.NoError(t, err)
	assert.Contains(t, out, "successfully downloaded new trailers")
	assert.Contains(t, out, "skipped: has_trailer")
	assert.Contains(t, out, "skipped: bad_name")
	assert.Contains(t, strings.ToUpper(out), "DOWNLOADED")
}

func TestRoot_HookSelfTest(t *testing.T) {
	cfg := testConfig(t)
	env := map[string]string{"sonarr_eventtype": "Test"}

	out, err := runCLI(t, env, "--config", cfg)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out, "youtube api key is not set")

	t.Setenv("YOUTUBE_API_KEY", "real-key")
	out, err = runCLI(t, env, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "test successful")
}

func TestRoot_HookIgnoresLibraryArgument(t *testing.T) {
	cfg := testConfig(t)
	env := map[string]string{"radarr_eventtype": "Grab"}

	_, err := runCLI(t, env, "--config", cfg, filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err, "event handling wins over the library argument")
}

func TestRoot_InvalidConfig(t *testing.T) {
	testConfig(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search.fr]\nkeywords = \"x\"\n[reencode.subtitle]\nsrt = \"ass\"\n"), 0o644))

	_, err := runCLI(t, nil, "--config", path, t.TempDir())
	require.Error(t, err)
	var cfgErr *config.Error
	assert.True(t, errors.As(err, &cfgErr))
}

func TestParseCommand(t *testing.T) {
	out, err := runCLI(t, nil, "parse", "Show: Name (2019) {tvdb-12345}")
	require.NoError(t, err)
	assert.Contains(t, out, "Kind:     series")
	assert.Contains(t, out, "TVDB ID:  12345")
	assert.Contains(t, out, "Trailer:  Show Name (2019)-trailer.<ext>")
}

func TestParseCommand_JSON(t *testing.T) {
	out, err := runCLI(t, nil, "parse", "Heat (1995)", "--json", "--file", "Heat (1995) {tmdb-949}.mkv")
	require.NoError(t, err)

	var got parseResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, parseResult{
		Title:       "Heat",
		Year:        1995,
		Kind:        "movie",
		TMDBID:      "949",
		SearchTitle: "Heat",
		TrailerName: "Heat (1995)-trailer",
	}, got)
}

func TestParseCommand_Invalid(t *testing.T) {
	_, err := runCLI(t, nil, "parse", "no year here")
	require.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := runCLI(t, nil, "config", "init", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default configuration")
	assert.FileExists(t, target)

	_, err = runCLI(t, nil, "config", "init", target)
	require.Error(t, err, "existing file is not overwritten")

	_, err = runCLI(t, nil, "config", "init", "--force", target)
	require.NoError(t, err)
}

func TestConfigTest(t *testing.T) {
	cfg := testConfig(t)

	out, err := runCLI(t, nil, "config", "test", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid!")
	assert.Contains(t, out, "Languages:  de, default, es, fr, it")
	assert.Contains(t, out, "TMDB:       disabled (no api key)")

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[log]\nlevel = \"loud\"\n"), 0o644))
	out, err = runCLI(t, nil, "config", "test", bad)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out, "Validation errors:")
}

func TestConfigShowMasksKeys(t *testing.T) {
	cfg := testConfig(t)
	t.Setenv("TMDB_API_KEY", "abcdef123456")

	out, err := runCLI(t, nil, "--config", cfg, "config", "show")
	require.NoError(t, err)
	assert.NotContains(t, out, "abcdef123456")
	assert.Contains(t, out, "# source: "+cfg)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "teaser dev\n", out)
}
