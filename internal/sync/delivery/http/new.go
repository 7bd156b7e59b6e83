package http

import (
	"org-tasks-sync/internal/sync"
	"org-tasks-sync/pkg/log"
)

type handler struct {
	l           log.Logger
	uc          sync.UseCase
	defaultList string
}

// New creates the HTTP handler for the sync domain. Requests without a
// listname use defaultList.
func New(l log.Logger, uc sync.UseCase, defaultList string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		defaultList: defaultList,
	}
}
