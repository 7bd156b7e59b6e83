package cli

import (
	"errors"
	"fmt"

	"org-tasks-sync/internal/sync"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// conflictError reports a merge that needs manual resolution.
type conflictError struct {
	path string
}

func (e *conflictError) Error() string {
	return fmt.Sprintf("merge conflict, resolve it in %s", e.path)
}

// ExitCode maps an error returned by the command line to an exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *usageError
	var ce *conflictError
	switch {
	case errors.As(err, &ue), errors.As(err, &ce), errors.Is(err, sync.ErrListNotFound):
		return ExitUsage
	default:
		return ExitFailure
	}
}
