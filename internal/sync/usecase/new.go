package usecase

import (
	"org-tasks-sync/internal/sync"
	"org-tasks-sync/internal/sync/repository"
	pkgLog "org-tasks-sync/pkg/log"
)

// DefaultRetryBudget bounds how many times out-of-order remote tasks are
// requeued while assembling a tree.
const DefaultRetryBudget = 1000

var _ sync.UseCase = (*implUseCase)(nil)

// implUseCase is the private implementation of sync.UseCase.
type implUseCase struct {
	l           pkgLog.Logger
	remote      repository.RemoteRepository
	snapshots   repository.SnapshotRepository
	retryBudget int
}

// New creates a new sync UseCase implementation. A non-positive retryBudget
// selects DefaultRetryBudget.
func New(l pkgLog.Logger, remote repository.RemoteRepository, snapshots repository.SnapshotRepository, retryBudget int) *implUseCase {
	if retryBudget <= 0 {
		retryBudget = DefaultRetryBudget
	}
	return &implUseCase{
		l:           l,
		remote:      remote,
		snapshots:   snapshots,
		retryBudget: retryBudget,
	}
}
