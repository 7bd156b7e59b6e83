package usecase

import (
	"context"

	"org-tasks-sync/internal/sync"
)

// Push replaces the remote list with input.Tree and records it as the new
// merge base.
func (uc *implUseCase) Push(ctx context.Context, input sync.PushInput) (sync.PushOutput, error) {
	if input.Tree == nil {
		return sync.PushOutput{}, sync.ErrNilTree
	}

	unlock, err := uc.lockList(ctx, input.ListName)
	if err != nil {
		return sync.PushOutput{}, err
	}
	defer unlock()

	listID, err := uc.resolveList(ctx, input.ListName)
	if err != nil {
		return sync.PushOutput{}, err
	}

	count, err := uc.replaceRemote(ctx, listID, input.Tree)
	if err != nil {
		return sync.PushOutput{}, err
	}

	if err := uc.snapshots.Save(ctx, input.ListName, input.Tree); err != nil {
		uc.l.Errorf(ctx, "uc.Push Save: %v", err)
		return sync.PushOutput{}, err
	}

	return sync.PushOutput{
		ListID:    listID,
		TaskCount: count,
	}, nil
}
