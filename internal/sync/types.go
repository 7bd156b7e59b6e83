package sync

import "org-tasks-sync/internal/tasktree"

// PullInput selects the list to fetch. An empty ListName means the default
// list. With SaveSnapshot the fetched tree becomes the new merge base.
type PullInput struct {
	ListName     string
	SaveSnapshot bool
}

// PullOutput is the fetched remote list.
type PullOutput struct {
	ListID  string
	Tree    *tasktree.Tree
	Outline string
}

// PushInput is the tree that replaces the remote list.
type PushInput struct {
	ListName string
	Tree     *tasktree.Tree
}

// PushOutput reports what was written.
type PushOutput struct {
	ListID    string
	TaskCount int
}

// SyncInput is the locally edited tree.
type SyncInput struct {
	ListName string
	Local    *tasktree.Tree
}

// SyncOutput is the merge result. When Conflict is set, Outline holds the
// merged text with conflict markers and Tree may be nil.
type SyncOutput struct {
	ListID   string
	Tree     *tasktree.Tree
	Outline  string
	Conflict bool
	// FirstSync is set when no snapshot existed and the remote list was
	// used as the merge base.
	FirstSync bool
}
