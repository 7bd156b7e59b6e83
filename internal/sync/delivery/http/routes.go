package http

import (
	"org-tasks-sync/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.TraceID())
	rg.GET("/lists", h.Lists)
	rg.GET("/outline", h.Pull)
	rg.PUT("/outline", h.Push)
	rg.POST("/sync", h.Sync)
}
