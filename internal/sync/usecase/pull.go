package usecase

import (
	"context"

	"org-tasks-sync/internal/outline"
	"org-tasks-sync/internal/sync"
)

// Pull fetches a remote list as a task tree.
func (uc *implUseCase) Pull(ctx context.Context, input sync.PullInput) (sync.PullOutput, error) {
	if input.SaveSnapshot {
		unlock, err := uc.lockList(ctx, input.ListName)
		if err != nil {
			return sync.PullOutput{}, err
		}
		defer unlock()
	}

	listID, err := uc.resolveList(ctx, input.ListName)
	if err != nil {
		return sync.PullOutput{}, err
	}

	tree, err := uc.fetchTree(ctx, listID)
	if err != nil {
		return sync.PullOutput{}, err
	}

	if input.SaveSnapshot {
		if err := uc.snapshots.Save(ctx, input.ListName, tree); err != nil {
			uc.l.Errorf(ctx, "uc.Pull Save: %v", err)
			return sync.PullOutput{}, err
		}
	}

	return sync.PullOutput{
		ListID:  listID,
		Tree:    tree,
		Outline: outline.Encode(tree),
	}, nil
}
