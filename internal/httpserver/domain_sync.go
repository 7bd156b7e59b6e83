package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"org-tasks-sync/internal/middleware"
	syncHTTP "org-tasks-sync/internal/sync/delivery/http"
)

// setupSyncDomain registers the outline and task list routes.
func (srv HTTPServer) setupSyncDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := syncHTTP.New(srv.l, srv.syncUC, srv.defaultList)
	syncHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Sync domain registered")
	return nil
}
