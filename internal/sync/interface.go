package sync

import (
	"context"

	"org-tasks-sync/internal/model"
)

// UseCase keeps a local outline and a remote task list in step.
type UseCase interface {
	// Lists returns the remote task lists.
	Lists(ctx context.Context) ([]model.TaskList, error)

	// Pull fetches a remote list as a task tree.
	Pull(ctx context.Context, input PullInput) (PullOutput, error)

	// Push replaces a remote list with the given tree.
	Push(ctx context.Context, input PushInput) (PushOutput, error)

	// Sync three-way merges a local tree with the remote list against the
	// last synchronized snapshot. On conflict nothing is pushed or saved.
	Sync(ctx context.Context, input SyncInput) (SyncOutput, error)
}
