package gtasks

import "time"

// DefaultListID addresses the user's default task list.
const DefaultListID = "@default"

// Task is a simplified representation of a Google Tasks task.
type Task struct {
	ID       string
	ParentID string
	Title    string
	Notes    string
	Status   string // "needsAction" or "completed"
	Position string
}

// TaskList is a simplified representation of a Google Tasks list.
type TaskList struct {
	ID    string
	Title string
}

// InsertTaskRequest is the input for creating a task. Google Tasks inserts
// new tasks first among their siblings.
type InsertTaskRequest struct {
	ListID   string
	ParentID string
	Title    string
	Notes    string
	Status   string
}

// Options tunes throttling, paging and the list-name cache.
type Options struct {
	RequestsPerSecond float64
	Burst             int
	PageSize          int64
	ListCacheSize     int
	ListCacheTTL      time.Duration
}

func (o Options) withDefaults() Options {
	if o.Burst <= 0 {
		o.Burst = 1
	}
	if o.PageSize <= 0 || o.PageSize > 100 {
		o.PageSize = 100
	}
	if o.ListCacheSize <= 0 {
		o.ListCacheSize = 64
	}
	if o.ListCacheTTL <= 0 {
		o.ListCacheTTL = 10 * time.Minute
	}
	return o
}
