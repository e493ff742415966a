package library_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/teaser/internal/library"
	"github.com/vmunix/teaser/internal/library/mocks"
	"github.com/vmunix/teaser/internal/logging"
	"github.com/vmunix/teaser/internal/naming"
	"github.com/vmunix/teaser/internal/pipeline"
)

const root = "/library"

func newFs(t *testing.T, files map[string]string, dirs ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0o755))
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(root+"/"+d, 0o755))
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, root+"/"+path, []byte(content), 0o644))
	}
	return fs
}

func published(item naming.Item) pipeline.Result {
	return pipeline.Result{Item: item, Status: pipeline.StatusPublished}
}

func TestWalker_MovieFolder(t *testing.T) {
	fs := newFs(t, map[string]string{
		"Inception (2010)/Inception (2010).mkv": "feature",
	})
	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl)
	proc.EXPECT().
		Process(gomock.Any(), naming.Item{
			Title:      "Inception",
			Year:       2010,
			Kind:       naming.Movie,
			FolderPath: "/library/Inception (2010)",
		}).
		DoAndReturn(func(_ context.Context, item naming.Item) pipeline.Result { return published(item) })

	sum, err := library.NewWalker(fs, proc, logging.Discard()).Run(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Total)
	require.Len(t, sum.Reports, 1)
	assert.Equal(t, library.NotSkipped, sum.Reports[0].Skip)
}

func TestWalker_SeriesFolderSkipsFileScan(t *testing.T) {
	fs := newFs(t, nil, "Show Name (2019) {tvdb-12345}")
	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl)
	proc.EXPECT().
		Process(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item naming.Item) pipeline.Result {
			assert.Equal(t, naming.Series, item.Kind)
			assert.Equal(t, "Show Name", item.Title)
			assert.Equal(t, 2019, item.Year)
			assert.Equal(t, "12345", item.ExternalSeriesID)
			assert.Empty(t, item.ExternalWorkID)
			return pipeline.Result{Item: item, Status: pipeline.StatusNoCandidate}
		})

	sum, err := library.NewWalker(fs, proc, logging.Discard()).Run(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Total)
}

func TestWalker_WorkIDFromLargestFile(t *testing.T) {
	fs := newFs(t, map[string]string{
		"Heat (1995)/movie.nfo":                        "tiny",
		"Heat (1995)/Heat (1995) {tmdb-949}.mkv":       "a much larger feature file",
		"Heat (1995)/Heat (1995) [tmdbid-1] extra.srt": "subs",
	})
	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl)
	proc.EXPECT().
		Process(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item naming.Item) pipeline.Result {
			assert.Equal(t, "949", item.ExternalWorkID)
			return published(item)
		})

	sum, err := library.NewWalker(fs, proc, logging.Discard()).Run(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Total)
}

func TestWalker_Skips(t *testing.T) {
	fs := newFs(t, map[string]string{
		"Up (2009)/Up (2009).mkv":            "feature",
		"Up (2009)/Up (2009)-Trailer.mp4":    "trailer",
		"Show (2020) {tvdb-1}/x-TRAILER.mkv": "trailer",
		"not a movie/file.mkv":               "feature",
		"loose-file.mkv":                     "ignored",
		"Alien (1979)/Alien (1979).mkv":      "feature",
	}, "Empty (2000)", "Alien (1979)/Extras-Trailer")
	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl) // no calls expected

	sum, err := library.NewWalker(fs, proc, logging.Discard()).Run(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Total)

	skips := map[string]library.Skip{}
	for _, r := range sum.Reports {
		skips[r.Folder] = r.Skip
		assert.Nil(t, r.Result)
	}
	assert.Equal(t, map[string]library.Skip{
		"Alien (1979)":         library.SkipHasTrailer,
		"Empty (2000)":         library.SkipNoFiles,
		"Show (2020) {tvdb-1}": library.SkipHasTrailer,
		"Up (2009)":            library.SkipHasTrailer,
		"not a movie":          library.SkipBadName,
	}, skips)
}

func TestWalker_NameOrderAndTotal(t *testing.T) {
	fs := newFs(t, map[string]string{
		"C (2003)/c.mkv": "c",
		"A (2001)/a.mkv": "a",
		"B (2002)/b.mkv": "b",
	})
	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl)

	var order []string
	record := func(status pipeline.Status) func(context.Context, naming.Item) pipeline.Result {
		return func(_ context.Context, item naming.Item) pipeline.Result {
			order = append(order, item.Title)
			return pipeline.Result{Item: item, Status: status}
		}
	}
	gomock.InOrder(
		proc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(record(pipeline.StatusPublished)),
		proc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(record(pipeline.StatusFailed)),
		proc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(record(pipeline.StatusPublished)),
	)

	sum, err := library.NewWalker(fs, proc, logging.Discard()).Run(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 0, sum.Reports[1].Count())
}

func TestWalker_FollowsSymlinks(t *testing.T) {
	store := t.TempDir()
	lib := t.TempDir()
	feature := filepath.Join(store, "Heat (1995) {tmdb-949}.mkv")
	trailer := filepath.Join(store, "Up (2009)-trailer.mp4")
	require.NoError(t, os.WriteFile(feature, []byte("feature"), 0o644))
	require.NoError(t, os.WriteFile(trailer, []byte("trailer"), 0o644))

	for _, dir := range []string{"Heat (1995)", "Up (2009)", "Gone (2014)"} {
		require.NoError(t, os.Mkdir(filepath.Join(lib, dir), 0o755))
	}
	if err := os.Symlink(feature, filepath.Join(lib, "Heat (1995)", "Heat (1995) {tmdb-949}.mkv")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(lib, "Up (2009)", "Up (2009).mkv"), []byte("feature"), 0o644))
	require.NoError(t, os.Symlink(trailer, filepath.Join(lib, "Up (2009)", "Up (2009)-trailer.mp4")))
	require.NoError(t, os.Symlink(filepath.Join(store, "missing.mkv"), filepath.Join(lib, "Gone (2014)", "Gone (2014).mkv")))

	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl)
	proc.EXPECT().
		Process(gomock.Any(), naming.Item{
			Title:          "Heat",
			Year:           1995,
			Kind:           naming.Movie,
			ExternalWorkID: "949",
			FolderPath:     filepath.Join(lib, "Heat (1995)"),
		}).
		DoAndReturn(func(_ context.Context, item naming.Item) pipeline.Result { return published(item) })

	sum, err := library.NewWalker(afero.NewOsFs(), proc, logging.Discard()).Run(context.Background(), lib)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Total)

	skips := map[string]library.Skip{}
	for _, r := range sum.Reports {
		skips[r.Folder] = r.Skip
	}
	assert.Equal(t, map[string]library.Skip{
		"Gone (2014)": library.SkipNoFiles,
		"Heat (1995)": library.NotSkipped,
		"Up (2009)":   library.SkipHasTrailer,
	}, skips)
}

func TestWalker_FollowsSymlinkedFolders(t *testing.T) {
	store := t.TempDir()
	lib := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(store, "Heat (1995)"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(store, "Heat (1995)", "heat.mkv"), []byte("feature"), 0o644))
	if err := os.Symlink(filepath.Join(store, "Heat (1995)"), filepath.Join(lib, "Heat (1995)")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl)
	proc.EXPECT().
		Process(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item naming.Item) pipeline.Result { return published(item) })

	sum, err := library.NewWalker(afero.NewOsFs(), proc, logging.Discard()).Run(context.Background(), lib)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Total)
}

func TestWalker_RootNotFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctrl := gomock.NewController(t)

	_, err := library.NewWalker(fs, mocks.NewMockProcessor(ctrl), logging.Discard()).Run(context.Background(), "/missing")
	assert.ErrorIs(t, err, library.ErrRootNotFound)

	require.NoError(t, afero.WriteFile(fs, "/file", []byte("x"), 0o644))
	_, err = library.NewWalker(fs, mocks.NewMockProcessor(ctrl), logging.Discard()).Run(context.Background(), "/file")
	assert.ErrorIs(t, err, library.ErrRootNotFound)
}

func TestWalker_Canceled(t *testing.T) {
	fs := newFs(t, map[string]string{"A (2001)/a.mkv": "a"})
	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl) // no calls expected

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := library.NewWalker(fs, proc, logging.Discard()).Run(ctx, root)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, sum.Reports)
}
