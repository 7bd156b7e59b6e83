package usecase

import (
	"context"
	"errors"
	"fmt"

	"org-tasks-sync/internal/sync"
	"org-tasks-sync/internal/sync/repository"
	"org-tasks-sync/internal/tasktree"
)

func (uc *implUseCase) resolveList(ctx context.Context, name string) (string, error) {
	id, err := uc.remote.ResolveList(ctx, name)
	if errors.Is(err, repository.ErrListNotFound) {
		return "", fmt.Errorf("%w: %q", sync.ErrListNotFound, name)
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolveList ResolveList: %v", err)
		return "", err
	}
	return id, nil
}

// lockList serializes operations that write a list. Callers defer the
// returned func.
func (uc *implUseCase) lockList(ctx context.Context, name string) (func(), error) {
	unlock, err := uc.snapshots.Lock(ctx, name)
	if err != nil {
		uc.l.Errorf(ctx, "uc.lockList Lock: %v", err)
		return nil, err
	}
	return unlock, nil
}

func (uc *implUseCase) fetchTree(ctx context.Context, listID string) (*tasktree.Tree, error) {
	items, err := uc.remote.ListTasks(ctx, listID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.fetchTree ListTasks: %v", err)
		return nil, err
	}
	tree, err := assemble(items, uc.retryBudget)
	if err != nil {
		uc.l.Errorf(ctx, "uc.fetchTree assemble: %v", err)
		return nil, err
	}
	return tree, nil
}

// replaceRemote erases the remote list and inserts tree in its place. The
// ids assigned by the remote are written back to the tree's nodes.
func (uc *implUseCase) replaceRemote(ctx context.Context, listID string, tree *tasktree.Tree) (int, error) {
	existing, err := uc.remote.ListTasks(ctx, listID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.replaceRemote ListTasks: %v", err)
		return 0, err
	}
	for _, t := range existing {
		if err := uc.remote.DeleteTask(ctx, listID, t.ID); err != nil {
			uc.l.Errorf(ctx, "uc.replaceRemote DeleteTask: %v", err)
			return 0, err
		}
	}

	count := 0
	if err := uc.insertChildren(ctx, listID, "", tree.Children, &count); err != nil {
		return count, err
	}
	uc.l.Infof(ctx, "uc.replaceRemote: replaced %d tasks with %d in %s", len(existing), count, listID)
	return count, nil
}

// insertChildren inserts nodes last to first since the remote puts every new
// task ahead of its existing siblings.
func (uc *implUseCase) insertChildren(ctx context.Context, listID, parentID string, nodes []*tasktree.Node, count *int) error {
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		id, err := uc.remote.InsertTask(ctx, repository.InsertTaskOptions{
			ListID:   listID,
			ParentID: parentID,
			Title:    n.Title,
			Notes:    notesText(n),
			Status:   remoteStatus(n),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.insertChildren InsertTask: %v", err)
			return err
		}
		n.ID = id
		*count++
		if err := uc.insertChildren(ctx, listID, id, n.Children, count); err != nil {
			return err
		}
	}
	return nil
}

func notesText(n *tasktree.Node) string {
	if n.Notes == nil {
		return ""
	}
	return *n.Notes
}

func remoteStatus(n *tasktree.Node) string {
	if n.Completed() {
		return string(tasktree.StatusCompleted)
	}
	return string(tasktree.StatusNeedsAction)
}
