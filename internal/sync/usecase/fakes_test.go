package usecase_test

import (
	"context"
	"fmt"

	"org-tasks-sync/internal/model"
	"org-tasks-sync/internal/outline"
	"org-tasks-sync/internal/sync/repository"
	"org-tasks-sync/internal/tasktree"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeRemote behaves like the remote task service: every insert lands ahead
// of its existing siblings and deleting a task removes its subtasks.
type fakeRemote struct {
	lists    map[string]string // title -> id
	tasks    map[string]model.RemoteTask
	children map[string][]string // parent id ("" for top level) -> ordered ids
	nextID   int

	// reversed returns ListTasks results children first.
	reversed  bool
	extra     []model.RemoteTask
	insertErr error
	inserts   int
	deletes   int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		lists:    map[string]string{"Work": "list-work"},
		tasks:    make(map[string]model.RemoteTask),
		children: make(map[string][]string),
	}
}

// seed replaces the remote content with the tree encoded by text.
func (f *fakeRemote) seed(text string) {
	tree, err := outline.Decode(text)
	if err != nil {
		panic(err)
	}
	f.tasks = make(map[string]model.RemoteTask)
	f.children = make(map[string][]string)
	var add func(parentID string, nodes []*tasktree.Node)
	add = func(parentID string, nodes []*tasktree.Node) {
		for _, n := range nodes {
			f.nextID++
			id := fmt.Sprintf("t%d", f.nextID)
			rt := model.RemoteTask{ID: id, ParentID: parentID, Title: n.Title, Status: "needsAction"}
			if n.Completed() {
				rt.Status = "completed"
			}
			if n.Notes != nil {
				rt.Notes = *n.Notes
			}
			f.tasks[id] = rt
			f.children[parentID] = append(f.children[parentID], id)
			add(id, n.Children)
		}
	}
	add("", tree.Children)
}

func (f *fakeRemote) ResolveList(ctx context.Context, title string) (string, error) {
	if title == "" {
		return "@default", nil
	}
	id, ok := f.lists[title]
	if !ok {
		return "", fmt.Errorf("%w: %q", repository.ErrListNotFound, title)
	}
	return id, nil
}

func (f *fakeRemote) ListTaskLists(ctx context.Context) ([]model.TaskList, error) {
	out := []model.TaskList{{ID: "@default", Title: "My Tasks"}}
	for title, id := range f.lists {
		out = append(out, model.TaskList{ID: id, Title: title})
	}
	return out, nil
}

func (f *fakeRemote) ListTasks(ctx context.Context, listID string) ([]model.RemoteTask, error) {
	var out []model.RemoteTask
	var walk func(parentID string)
	walk = func(parentID string) {
		for i, id := range f.children[parentID] {
			t := f.tasks[id]
			t.Position = fmt.Sprintf("%08d", i)
			out = append(out, t)
			walk(id)
		}
	}
	walk("")
	if f.reversed {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return append(out, f.extra...), nil
}

func (f *fakeRemote) InsertTask(ctx context.Context, opt repository.InsertTaskOptions) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if opt.ParentID != "" {
		if _, ok := f.tasks[opt.ParentID]; !ok {
			return "", fmt.Errorf("%w: unknown parent", repository.ErrFailedToInsert)
		}
	}
	f.nextID++
	f.inserts++
	id := fmt.Sprintf("t%d", f.nextID)
	f.tasks[id] = model.RemoteTask{ID: id, ParentID: opt.ParentID, Title: opt.Title, Notes: opt.Notes, Status: opt.Status}
	f.children[opt.ParentID] = append([]string{id}, f.children[opt.ParentID]...)
	return id, nil
}

func (f *fakeRemote) DeleteTask(ctx context.Context, listID, taskID string) error {
	t, ok := f.tasks[taskID]
	if !ok {
		return nil
	}
	f.deletes++
	for _, c := range f.children[taskID] {
		f.DeleteTask(ctx, listID, c)
	}
	delete(f.tasks, taskID)
	delete(f.children, taskID)
	siblings := f.children[t.ParentID]
	for i, id := range siblings {
		if id == taskID {
			f.children[t.ParentID] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	return nil
}

// outlineText renders the remote content the way a pull would see it.
func (f *fakeRemote) outlineText() string {
	tree := tasktree.New()
	var add func(parentID string)
	add = func(parentID string) {
		for _, id := range f.children[parentID] {
			t := f.tasks[id]
			nt := tasktree.NewTask{Title: t.Title, ID: id, Status: tasktree.Status(t.Status)}
			if t.Notes != "" {
				nt.Notes = tasktree.Notes(t.Notes)
			}
			if err := tree.AddSubtask(nt, parentID); err != nil {
				panic(err)
			}
			add(id)
		}
	}
	add("")
	return outline.Encode(tree)
}

type fakeSnapshots struct {
	saved map[string]string
	saves int

	lockErr error
	held    map[string]bool
	locks   int
	unlocks int
	// unheldSaves counts saves made without holding the list.
	unheldSaves int
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{
		saved: make(map[string]string),
		held:  make(map[string]bool),
	}
}

func (f *fakeSnapshots) Load(ctx context.Context, listName string) (*tasktree.Tree, error) {
	text, ok := f.saved[listName]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}
	tree, err := outline.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", listName, err)
	}
	return tree, nil
}

func (f *fakeSnapshots) Save(ctx context.Context, listName string, tree *tasktree.Tree) error {
	if !f.held[listName] {
		f.unheldSaves++
	}
	f.saves++
	f.saved[listName] = outline.Encode(tree)
	return nil
}

func (f *fakeSnapshots) Lock(ctx context.Context, listName string) (func(), error) {
	if f.lockErr != nil {
		return nil, f.lockErr
	}
	if f.held[listName] {
		return nil, fmt.Errorf("list %q is already held", listName)
	}
	f.locks++
	f.held[listName] = true
	return func() {
		f.unlocks++
		f.held[listName] = false
	}, nil
}
