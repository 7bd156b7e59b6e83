package gtasks

import (
	"context"
	"fmt"

	"google.golang.org/api/tasks/v1"
)

// ListTaskLists returns every task list of the user.
func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	var out []TaskList
	pageToken := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		call := c.service.Tasklists.List().MaxResults(c.pageSize).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list task lists: %w", err)
		}
		for _, l := range res.Items {
			out = append(out, TaskList{ID: l.Id, Title: l.Title})
			c.lists.Add(l.Title, l.Id)
		}
		if res.NextPageToken == "" {
			return out, nil
		}
		pageToken = res.NextPageToken
	}
}

// FindListID resolves a list title to its id. The second result is false
// when no list has that title.
func (c *Client) FindListID(ctx context.Context, title string) (string, bool, error) {
	if id, ok := c.lists.Get(title); ok {
		return id, true, nil
	}
	lists, err := c.ListTaskLists(ctx)
	if err != nil {
		return "", false, err
	}
	for _, l := range lists {
		if l.Title == title {
			return l.ID, true, nil
		}
	}
	return "", false, nil
}

// ListTasks returns all tasks of a list in the order the API reports them.
// Completed and hidden tasks are included; tasks completed in other clients
// are hidden by default.
func (c *Client) ListTasks(ctx context.Context, listID string) ([]Task, error) {
	var out []Task
	pageToken := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		call := c.service.Tasks.List(listID).
			ShowCompleted(true).
			ShowHidden(true).
			MaxResults(c.pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		for _, t := range res.Items {
			out = append(out, fromAPI(t))
		}
		if res.NextPageToken == "" {
			return out, nil
		}
		pageToken = res.NextPageToken
	}
}

// InsertTask creates a task as the first child of req.ParentID, or first
// top-level task when ParentID is empty.
func (c *Client) InsertTask(ctx context.Context, req InsertTaskRequest) (Task, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Task{}, err
	}
	call := c.service.Tasks.Insert(req.ListID, &tasks.Task{
		Title:  req.Title,
		Notes:  req.Notes,
		Status: req.Status,
	}).Context(ctx)
	if req.ParentID != "" {
		call = call.Parent(req.ParentID)
	}

	created, err := call.Do()
	if err != nil {
		return Task{}, fmt.Errorf("failed to insert task %q: %w", req.Title, err)
	}
	return fromAPI(created), nil
}

// DeleteTask removes a task from a list.
func (c *Client) DeleteTask(ctx context.Context, listID, taskID string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	if err := c.service.Tasks.Delete(listID, taskID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	return nil
}

func fromAPI(t *tasks.Task) Task {
	return Task{
		ID:       t.Id,
		ParentID: t.Parent,
		Title:    t.Title,
		Notes:    t.Notes,
		Status:   t.Status,
		Position: t.Position,
	}
}
