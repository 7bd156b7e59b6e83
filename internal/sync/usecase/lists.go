package usecase

import (
	"context"

	"org-tasks-sync/internal/model"
)

// Lists returns the remote task lists.
func (uc *implUseCase) Lists(ctx context.Context) ([]model.TaskList, error) {
	lists, err := uc.remote.ListTaskLists(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Lists ListTaskLists: %v", err)
		return nil, err
	}
	return lists, nil
}
