package usecase

import (
	"context"
	"errors"
	"fmt"

	"org-tasks-sync/internal/merge"
	"org-tasks-sync/internal/outline"
	"org-tasks-sync/internal/sync"
	"org-tasks-sync/internal/sync/repository"
)

// Sync merges input.Local with the remote list against the last snapshot.
// Without a snapshot the remote list is the base. A conflicting merge is
// returned as is; the remote list and the snapshot stay untouched.
func (uc *implUseCase) Sync(ctx context.Context, input sync.SyncInput) (sync.SyncOutput, error) {
	if input.Local == nil {
		return sync.SyncOutput{}, sync.ErrNilTree
	}

	unlock, err := uc.lockList(ctx, input.ListName)
	if err != nil {
		return sync.SyncOutput{}, err
	}
	defer unlock()

	listID, err := uc.resolveList(ctx, input.ListName)
	if err != nil {
		return sync.SyncOutput{}, err
	}

	remote, err := uc.fetchTree(ctx, listID)
	if err != nil {
		return sync.SyncOutput{}, err
	}

	firstSync := false
	base, err := uc.snapshots.Load(ctx, input.ListName)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		uc.l.Infof(ctx, "uc.Sync: no snapshot for %q, using the remote list as base", input.ListName)
		base = remote
		firstSync = true
	} else if errors.Is(err, outline.ErrMalformedOutline) {
		uc.l.Errorf(ctx, "uc.Sync Load: %v", err)
		return sync.SyncOutput{}, fmt.Errorf("%w: snapshot for %q: %v", sync.ErrCorruptState, input.ListName, err)
	} else if err != nil {
		uc.l.Errorf(ctx, "uc.Sync Load: %v", err)
		return sync.SyncOutput{}, err
	}

	res, mergeErr := merge.ThreeWay(input.Local, base, remote)
	out := sync.SyncOutput{
		ListID:    listID,
		Tree:      res.Tree,
		Outline:   res.Text,
		Conflict:  res.Conflict,
		FirstSync: firstSync,
	}
	if res.Conflict {
		uc.l.Warnf(ctx, "uc.Sync: merge conflict in %q", input.ListName)
		return out, nil
	}
	if mergeErr != nil {
		uc.l.Errorf(ctx, "uc.Sync ThreeWay: %v", mergeErr)
		return sync.SyncOutput{}, fmt.Errorf("%w: merge result: %v", sync.ErrCorruptState, mergeErr)
	}

	if _, err := uc.replaceRemote(ctx, listID, res.Tree); err != nil {
		return sync.SyncOutput{}, err
	}
	if err := uc.snapshots.Save(ctx, input.ListName, res.Tree); err != nil {
		uc.l.Errorf(ctx, "uc.Sync Save: %v", err)
		return sync.SyncOutput{}, err
	}

	out.Outline = outline.Encode(res.Tree)
	return out, nil
}
