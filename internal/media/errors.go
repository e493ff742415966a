package media

import "errors"

var (
	// ErrEmptyPath indicates a probe or transcode was requested without a file.
	ErrEmptyPath = errors.New("empty media path")
	// ErrNothingToTranscode indicates a job whose plan copies every stream.
	ErrNothingToTranscode = errors.New("plan copies every stream")
)
