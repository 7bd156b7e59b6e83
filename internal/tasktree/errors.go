package tasktree

import "errors"

var (
	// ErrNoSuchParent is returned by AddSubtask when the parent id does not
	// resolve. Callers reassembling flat lists retry on it.
	ErrNoSuchParent = errors.New("no task with the given parent id")
)
