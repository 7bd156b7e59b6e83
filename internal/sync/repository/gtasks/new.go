package gtasks

import (
	"org-tasks-sync/internal/sync/repository"
	pkgGtasks "org-tasks-sync/pkg/gtasks"
	pkgLog "org-tasks-sync/pkg/log"
)

type implRepository struct {
	client *pkgGtasks.Client
	l      pkgLog.Logger
}

// New creates a Google Tasks backed remote repository.
func New(client *pkgGtasks.Client, l pkgLog.Logger) repository.RemoteRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
