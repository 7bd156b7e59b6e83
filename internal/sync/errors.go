package sync

import "errors"

// Domain-specific errors for the sync package.
var (
	ErrMalformedRemoteList = errors.New("remote task list cannot be assembled into a tree")
	ErrListNotFound        = errors.New("no task list with that name")
	ErrNilTree             = errors.New("task tree is required")
	// ErrCorruptState is a stored snapshot or a merge result that does not
	// decode. It never describes caller input.
	ErrCorruptState = errors.New("stored or merged outline cannot be decoded")
)
