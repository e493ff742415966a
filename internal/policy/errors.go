package policy

import "errors"

var (
	// ErrMissingDefault indicates the search policy has no "default" entry.
	ErrMissingDefault = errors.New("search policy: default entry required")

	// ErrUnknownStreamKind indicates a rule or parameter names a stream kind other than video or audio.
	ErrUnknownStreamKind = errors.New("unknown stream kind")

	// ErrDuplicateLanguage indicates two search keys naming the same language.
	ErrDuplicateLanguage = errors.New("same language configured twice")

	// ErrEmptyCodec indicates a rule or parameter key with an empty codec name.
	ErrEmptyCodec = errors.New("empty codec name")
)
