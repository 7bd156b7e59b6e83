package usecase

import (
	"errors"
	"fmt"
	"sort"

	"org-tasks-sync/internal/model"
	"org-tasks-sync/internal/sync"
	"org-tasks-sync/internal/tasktree"
)

// assemble rebuilds a tree from a flat remote list. Items are fed parents
// first; an item whose parent is still missing is requeued for the next pass.
// The requeue budget grows with the list so that its size alone never makes
// a valid list fail. A pass without progress means the remaining items can
// never be placed.
func assemble(items []model.RemoteTask, budget int) (*tasktree.Tree, error) {
	if budget < len(items) {
		budget = len(items)
	}
	queue := parentsFirst(items)

	tree := tasktree.New()
	retries := 0
	for len(queue) > 0 {
		var next []model.RemoteTask
		blocked := make(map[string]bool)
		for _, item := range queue {
			if !blocked[item.ParentID] {
				err := tree.AddSubtask(newTask(item), item.ParentID)
				if err == nil {
					continue
				}
				if !errors.Is(err, tasktree.ErrNoSuchParent) {
					return nil, err
				}
			}
			// later siblings wait too so their order is kept
			blocked[item.ParentID] = true
			next = append(next, item)
			retries++
			if retries > budget {
				return nil, fmt.Errorf("%w: retry budget of %d exhausted", sync.ErrMalformedRemoteList, budget)
			}
		}
		if len(next) == len(queue) {
			return nil, fmt.Errorf("%w: %d tasks reference missing parents, first %q (parent %s)",
				sync.ErrMalformedRemoteList, len(next), next[0].Title, next[0].ParentID)
		}
		queue = next
	}
	return tree, nil
}

// parentsFirst orders items breadth first from the top level, siblings by
// position. Positions only compare between siblings. Items not reachable
// from the top level follow, grouped by parent.
func parentsFirst(items []model.RemoteTask) []model.RemoteTask {
	byParent := make(map[string][]model.RemoteTask)
	for _, item := range items {
		byParent[item.ParentID] = append(byParent[item.ParentID], item)
	}
	for _, siblings := range byParent {
		sort.SliceStable(siblings, func(i, j int) bool {
			return siblings[i].Position < siblings[j].Position
		})
	}

	out := make([]model.RemoteTask, 0, len(items))
	parents := []string{""}
	for len(parents) > 0 {
		id := parents[0]
		parents = parents[1:]
		siblings, ok := byParent[id]
		if !ok {
			continue
		}
		delete(byParent, id)
		for _, item := range siblings {
			out = append(out, item)
			parents = append(parents, item.ID)
		}
	}

	rest := make([]string, 0, len(byParent))
	for id := range byParent {
		rest = append(rest, id)
	}
	sort.Strings(rest)
	for _, id := range rest {
		out = append(out, byParent[id]...)
	}
	return out
}

func newTask(item model.RemoteTask) tasktree.NewTask {
	t := tasktree.NewTask{
		Title:  item.Title,
		ID:     item.ID,
		Status: tasktree.StatusNeedsAction,
	}
	if item.Status == string(tasktree.StatusCompleted) {
		t.Status = tasktree.StatusCompleted
	}
	if item.Notes != "" {
		t.Notes = tasktree.Notes(item.Notes)
	}
	return t
}
