package repository

// InsertTaskOptions holds the parameters for creating a remote task.
type InsertTaskOptions struct {
	ListID   string
	ParentID string // empty for a top-level task
	Title    string
	Notes    string
	Status   string // "needsAction" or "completed"
}
