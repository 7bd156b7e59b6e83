package tasktree

import "fmt"

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// GetByID returns the first task, in depth-first order, whose id equals id.
func (t *Tree) GetByID(id string) (*Node, bool) {
	if id == "" {
		return nil, false
	}
	return findByID(t.Children, id)
}

func findByID(nodes []*Node, id string) (*Node, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
		if found, ok := findByID(n.Children, id); ok {
			return found, true
		}
	}
	return nil, false
}

// AddSubtask appends a task as the last top-level task when parentID is
// empty, or as the last child of the task with id parentID.
func (t *Tree) AddSubtask(task NewTask, parentID string) error {
	node := &Node{
		Title:  task.Title,
		ID:     task.ID,
		Notes:  task.Notes,
		Status: task.Status,
	}
	if parentID == "" {
		t.Append(node)
		return nil
	}
	parent, ok := t.GetByID(parentID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchParent, parentID)
	}
	parent.Append(node)
	return nil
}

// LastAtLevel returns the most recently appended container at depth level.
// Level 0 is the tree itself. The second result is false when the tree has
// no task that deep.
func (t *Tree) LastAtLevel(level int) (Container, bool) {
	if level < 0 {
		return nil, false
	}
	if level == 0 {
		return t, true
	}
	n := lastAtLevel(t.Children, level)
	if n == nil {
		return nil, false
	}
	return n, true
}

func lastAtLevel(nodes []*Node, level int) *Node {
	var res *Node
	for _, n := range nodes {
		if level == 1 {
			res = n
			continue
		}
		if found := lastAtLevel(n.Children, level-1); found != nil {
			res = found
		}
	}
	return res
}

// Concatenate returns a tree holding t1's tasks followed by t2's tasks. The
// tasks are shared with the inputs, not copied.
func Concatenate(t1, t2 *Tree) *Tree {
	children := make([]*Node, 0, len(t1.Children)+len(t2.Children))
	children = append(children, t1.Children...)
	children = append(children, t2.Children...)
	return &Tree{Children: children}
}

// GraftSubtree attaches sub to t. Without includeRoot the top-level tasks of
// sub become top-level tasks of t. With includeRoot a new task titled
// rootTitle, with notes rootNotes, is appended and sub's tasks go under it.
func (t *Tree) GraftSubtree(sub *Tree, includeRoot bool, rootTitle string, rootNotes *string) {
	graft(t, sub, includeRoot, rootTitle, rootNotes)
}

// GraftSubtree is the Node form of Tree.GraftSubtree.
func (n *Node) GraftSubtree(sub *Tree, includeRoot bool, rootTitle string, rootNotes *string) {
	graft(n, sub, includeRoot, rootTitle, rootNotes)
}

func graft(dst Container, sub *Tree, includeRoot bool, rootTitle string, rootNotes *string) {
	if !includeRoot {
		for _, c := range sub.Children {
			dst.Append(c)
		}
		return
	}
	dst.Append(&Node{
		Title:    rootTitle,
		Notes:    rootNotes,
		Status:   StatusNeedsAction,
		Children: sub.Children,
	})
}

// Walk visits every task in pre-order. Top-level tasks have depth 1.
// Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.Children, 1, fn)
}

func walk(nodes []*Node, depth int, fn func(n *Node, depth int) bool) bool {
	for _, n := range nodes {
		if !fn(n, depth) {
			return false
		}
		if !walk(n.Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// Len returns the number of tasks in the tree.
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	return &Tree{Children: cloneNodes(t.Children)}
}

func cloneNodes(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		c := *n
		if n.Notes != nil {
			c.Notes = Notes(*n.Notes)
		}
		c.Children = cloneNodes(n.Children)
		out[i] = &c
	}
	return out
}
