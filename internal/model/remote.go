package model

// RemoteTask is one item of a flat remote task list.
type RemoteTask struct {
	ID       string
	ParentID string // empty for top-level tasks
	Title    string
	Notes    string
	Status   string // "needsAction" or "completed"
	// Position orders siblings; it compares lexicographically.
	Position string
}

// TaskList identifies a remote task list.
type TaskList struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
