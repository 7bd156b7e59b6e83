package gtasks

import (
	"context"
	"fmt"

	"org-tasks-sync/internal/model"
	"org-tasks-sync/internal/sync/repository"
	pkgGtasks "org-tasks-sync/pkg/gtasks"
)

func (r *implRepository) ResolveList(ctx context.Context, title string) (string, error) {
	if title == "" {
		return pkgGtasks.DefaultListID, nil
	}
	id, ok, err := r.client.FindListID(ctx, title)
	if err != nil {
		r.l.Errorf(ctx, "gtasks repository: failed to resolve list %q: %v", title, err)
		return "", fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: %q", repository.ErrListNotFound, title)
	}
	return id, nil
}

func (r *implRepository) ListTaskLists(ctx context.Context) ([]model.TaskList, error) {
	lists, err := r.client.ListTaskLists(ctx)
	if err != nil {
		r.l.Errorf(ctx, "gtasks repository: failed to list task lists: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	out := make([]model.TaskList, 0, len(lists))
	for _, l := range lists {
		out = append(out, model.TaskList{ID: l.ID, Title: l.Title})
	}
	return out, nil
}

func (r *implRepository) ListTasks(ctx context.Context, listID string) ([]model.RemoteTask, error) {
	items, err := r.client.ListTasks(ctx, listID)
	if err != nil {
		r.l.Errorf(ctx, "gtasks repository: failed to list tasks of %s: %v", listID, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	out := make([]model.RemoteTask, 0, len(items))
	for _, t := range items {
		out = append(out, model.RemoteTask{
			ID:       t.ID,
			ParentID: t.ParentID,
			Title:    t.Title,
			Notes:    t.Notes,
			Status:   t.Status,
			Position: t.Position,
		})
	}
	r.l.Debugf(ctx, "gtasks repository: fetched %d tasks from %s", len(out), listID)
	return out, nil
}

func (r *implRepository) InsertTask(ctx context.Context, opt repository.InsertTaskOptions) (string, error) {
	created, err := r.client.InsertTask(ctx, pkgGtasks.InsertTaskRequest{
		ListID:   opt.ListID,
		ParentID: opt.ParentID,
		Title:    opt.Title,
		Notes:    opt.Notes,
		Status:   opt.Status,
	})
	if err != nil {
		r.l.Errorf(ctx, "gtasks repository: failed to insert task %q: %v", opt.Title, err)
		return "", fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return created.ID, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, listID, taskID string) error {
	err := r.client.DeleteTask(ctx, listID, taskID)
	if err == nil {
		return nil
	}
	if pkgGtasks.IsNotFound(err) {
		// deleting a parent removes its subtasks server side
		r.l.Debugf(ctx, "gtasks repository: task %s already deleted", taskID)
		return nil
	}
	r.l.Errorf(ctx, "gtasks repository: failed to delete task %s: %v", taskID, err)
	return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
}
