package tasktree

// Status mirrors the Google Tasks status values.
type Status string

const (
	StatusUnset       Status = ""
	StatusNeedsAction Status = "needsAction"
	StatusCompleted   Status = "completed"
)

// Node is a single task. ID is assigned by the remote service and is empty for
// tasks that were never pushed. Notes is nil when the task has no body.
type Node struct {
	Title    string
	ID       string
	Notes    *string
	Status   Status
	Children []*Node
}

// Tree is the root of a task hierarchy. Its children are the top-level tasks.
type Tree struct {
	Children []*Node
}

// Container is anything that can hold subtasks: a Tree or a Node.
type Container interface {
	Subtasks() []*Node
	Append(n *Node)
}

// NewTask describes a task to attach with AddSubtask.
type NewTask struct {
	Title  string
	ID     string
	Notes  *string
	Status Status
}

// Notes returns a pointer to s, for filling optional note bodies.
func Notes(s string) *string {
	return &s
}

func (t *Tree) Subtasks() []*Node { return t.Children }

func (t *Tree) Append(n *Node) { t.Children = append(t.Children, n) }

func (n *Node) Subtasks() []*Node { return n.Children }

func (n *Node) Append(c *Node) { n.Children = append(n.Children, c) }

// Completed reports whether the task is marked done.
func (n *Node) Completed() bool {
	return n.Status == StatusCompleted
}
