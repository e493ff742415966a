// Package library walks a media library root and feeds each item folder to
// the acquisition pipeline.
package library

//go:generate mockgen -source=walker.go -destination=mocks/mock_library.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vmunix/teaser/internal/naming"
	"github.com/vmunix/teaser/internal/pipeline"
)

// Processor runs the pipeline for one item.
type Processor interface {
	Process(ctx context.Context, item naming.Item) pipeline.Result
}

// Skip explains why a folder was not processed.
type Skip int

const (
	// NotSkipped means the folder went through the pipeline.
	NotSkipped Skip = iota
	// SkipHasTrailer means the folder already contains a trailer.
	SkipHasTrailer
	// SkipBadName means the folder name did not parse.
	SkipBadName
	// SkipNoFiles means a movie folder had no files to inspect.
	SkipNoFiles
	// SkipUnreadable means the folder could not be listed.
	SkipUnreadable
)

func (s Skip) String() string {
	switch s {
	case SkipHasTrailer:
		return "has_trailer"
	case SkipBadName:
		return "bad_name"
	case SkipNoFiles:
		return "no_files"
	case SkipUnreadable:
		return "unreadable"
	default:
		return ""
	}
}

// Report is the per-folder record of a run.
type Report struct {
	Folder string
	Skip   Skip
	Result *pipeline.Result // nil when skipped
}

// Count is the folder's contribution to the run total.
func (r Report) Count() int {
	if r.Result == nil {
		return 0
	}
	return r.Result.Count()
}

// Summary is the outcome of a library run.
type Summary struct {
	Root    string
	Total   int
	Reports []Report
}

// Walker iterates the immediate subfolders of a library root.
type Walker struct {
	fs   afero.Fs
	proc Processor
	log  *slog.Logger
}

// NewWalker creates a walker over fs.
func NewWalker(fs afero.Fs, proc Processor, log *slog.Logger) *Walker {
	return &Walker{
		fs:   fs,
		proc: proc,
		log:  log.With("component", "library"),
	}
}

// Run processes every item folder under root in name order and returns the
// number of trailers published. Only an unreadable root is an error; item
// failures count zero. Cancellation is checked between folders and returns
// the partial summary with ctx.Err().
func (w *Walker) Run(ctx context.Context, root string) (Summary, error) {
	sum := Summary{Root: root}

	info, err := w.fs.Stat(root)
	if err != nil || !info.IsDir() {
		return sum, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	// afero.ReadDir returns entries sorted by name.
	entries, err := afero.ReadDir(w.fs, root)
	if err != nil {
		return sum, fmt.Errorf("read library root: %w", err)
	}

	for _, e := range entries {
		dir := filepath.Join(root, e.Name())
		if !w.isDir(dir) {
			continue
		}
		if err := ctx.Err(); err != nil {
			w.log.Warn("run canceled", "processed", len(sum.Reports), "total", sum.Total)
			return sum, err
		}

		rep := w.folder(ctx, dir)
		sum.Reports = append(sum.Reports, rep)
		sum.Total += rep.Count()
	}

	w.log.Info("library run finished", "root", root, "folders", len(sum.Reports), "downloaded", sum.Total)
	return sum, nil
}

func (w *Walker) folder(ctx context.Context, dir string) Report {
	name := filepath.Base(dir)
	rep := Report{Folder: name}
	log := w.log.With("folder", name)

	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		log.Warn("cannot read folder, skipping", "error", err)
		rep.Skip = SkipUnreadable
		return rep
	}
	for _, e := range entries {
		if naming.IsTrailerFile(e.Name()) {
			log.Info("already has a trailer, skipping", "entry", e.Name())
			rep.Skip = SkipHasTrailer
			return rep
		}
	}

	item, err := naming.ParseFolderName(name)
	if err != nil {
		log.Warn("invalid folder name, expecting 'title (year)', skipping", "error", err)
		rep.Skip = SkipBadName
		return rep
	}
	item = item.WithFolder(dir)

	if item.IsMovie() {
		feature := largest(w.files(dir, entries))
		if feature == nil {
			log.Info("no movie file found, skipping")
			rep.Skip = SkipNoFiles
			return rep
		}
		if id, ok := naming.ParseMediaFilename(feature.Name()); ok {
			log.Debug("work id from file name", "file", feature.Name(), "tmdb_id", id)
			item = item.WithWorkID(id)
		}
	}

	log.Info("downloading trailer")
	res := w.proc.Process(ctx, item)
	rep.Result = &res
	return rep
}

// files returns the regular files among the entries of dir. Entries are
// stat'ed through the filesystem so symlinks resolve to their target; a
// dangling link is dropped.
func (w *Walker) files(dir string, entries []os.FileInfo) []os.FileInfo {
	var files []os.FileInfo
	for _, e := range entries {
		info, err := w.fs.Stat(filepath.Join(dir, e.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, info)
	}
	return files
}

func (w *Walker) isDir(path string) bool {
	info, err := w.fs.Stat(path)
	return err == nil && info.IsDir()
}

// largest returns the biggest file, the first by name on ties.
func largest(files []os.FileInfo) os.FileInfo {
	var best os.FileInfo
	for _, f := range files {
		if best == nil || f.Size() > best.Size() {
			best = f
		}
	}
	return best
}
