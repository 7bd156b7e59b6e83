package repository

import (
	"context"

	"org-tasks-sync/internal/model"
	"org-tasks-sync/internal/tasktree"
)

// RemoteRepository is the remote task service.
type RemoteRepository interface {
	// ResolveList maps a list title to its id; an empty title is the
	// default list.
	ResolveList(ctx context.Context, title string) (string, error)
	ListTaskLists(ctx context.Context) ([]model.TaskList, error)
	ListTasks(ctx context.Context, listID string) ([]model.RemoteTask, error)
	// InsertTask creates a task first among its siblings and returns its id.
	InsertTask(ctx context.Context, opt InsertTaskOptions) (string, error)
	// DeleteTask removes a task. A task that is already gone is not an error.
	DeleteTask(ctx context.Context, listID, taskID string) error
}

// SnapshotRepository stores the last tree both sides agreed on, per list.
type SnapshotRepository interface {
	// Load returns ErrSnapshotNotFound when nothing was saved for the list.
	Load(ctx context.Context, listName string) (*tasktree.Tree, error)
	Save(ctx context.Context, listName string, tree *tasktree.Tree) error
	// Lock blocks until no other caller holds the list, or ctx is done.
	// The returned func releases it.
	Lock(ctx context.Context, listName string) (func(), error)
}
