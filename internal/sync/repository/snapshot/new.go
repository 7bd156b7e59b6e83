package snapshot

import (
	"org-tasks-sync/internal/sync/repository"
	pkgLog "org-tasks-sync/pkg/log"
)

type implRepository struct {
	dir string
	l   pkgLog.Logger
}

// New creates a snapshot repository that keeps one outline file per list
// under dir.
func New(dir string, l pkgLog.Logger) repository.SnapshotRepository {
	return &implRepository{
		dir: dir,
		l:   l,
	}
}
