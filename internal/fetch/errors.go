package fetch

import "errors"

var (
	// ErrEmptyVideoID indicates a fetch without a video id.
	ErrEmptyVideoID = errors.New("empty video id")
	// ErrNoOutput indicates yt-dlp exited cleanly but no file was produced.
	ErrNoOutput = errors.New("yt-dlp produced no output file")
)
