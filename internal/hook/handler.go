package hook

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/vmunix/teaser/internal/library"
	"github.com/vmunix/teaser/internal/naming"
	"github.com/vmunix/teaser/internal/pipeline"
)

// Handler turns an event into at most one pipeline run and an exit code.
type Handler struct {
	proc       library.Processor
	searchable bool
	log        *slog.Logger
}

// NewHandler creates a handler. searchable reports whether a video-search
// key is configured; the self-test fails without one.
func NewHandler(proc library.Processor, searchable bool, log *slog.Logger) *Handler {
	return &Handler{
		proc:       proc,
		searchable: searchable,
		log:        log.With("component", "hook"),
	}
}

// Handle runs ev and returns the process exit code.
func (h *Handler) Handle(ctx context.Context, ev Event) int {
	log := h.log.With("source", string(ev.Source), "event", ev.Type)
	log.Info("triggered by event", "action", ev.Action().String())

	switch ev.Action() {
	case ActionTest:
		if !h.searchable {
			log.Error("youtube api key is not set, add it to the config file")
			return 1
		}
		log.Info("test successful")
		return 0

	case ActionAcquire:
		item, err := ev.Item()
		if err != nil {
			log.Error("cannot build item from event", "error", err)
			return 0
		}
		h.acquire(ctx, log, item)
		return 0

	default:
		if ev.IsUpgrade {
			log.Info("upgrade, trailer already handled on first import")
		}
		return 0
	}
}

func (h *Handler) acquire(ctx context.Context, log *slog.Logger, item naming.Item) {
	root := filepath.Dir(item.FolderPath)
	lock, err := library.Lock(ctx, root)
	if err != nil {
		log.Error("cannot lock library", "root", root, "error", err)
		return
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn("release library lock", "error", err)
		}
	}()

	res := h.proc.Process(ctx, item)
	switch res.Status {
	case pipeline.StatusPublished:
		log.Info("trailer downloaded", "item", item.Label(), "path", res.Acquisition.Path)
	case pipeline.StatusNoCandidate:
		log.Info("no trailer found", "item", item.Label())
	default:
		log.Error("trailer download failed", "item", item.Label(), "error", res.Err)
	}
}
