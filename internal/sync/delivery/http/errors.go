package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"org-tasks-sync/internal/outline"
	"org-tasks-sync/internal/sync"
	"org-tasks-sync/pkg/response"
)

// writeError translates domain errors into HTTP responses. Anything not
// listed here is reported as an internal error.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sync.ErrListNotFound):
		response.NotFound(c, err)
	case errors.Is(err, sync.ErrCorruptState):
		response.InternalError(c, err)
	case errors.Is(err, outline.ErrMalformedOutline):
		response.ErrorWithStatus(c, http.StatusUnprocessableEntity, err, nil)
	case errors.Is(err, sync.ErrMalformedRemoteList):
		response.ErrorWithStatus(c, http.StatusBadGateway, err, nil)
	case errors.Is(err, sync.ErrNilTree):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

// writeRequestError reports a request that failed binding or outline decoding.
func (h *handler) writeRequestError(c *gin.Context, err error) {
	if errors.Is(err, outline.ErrMalformedOutline) {
		response.ErrorWithStatus(c, http.StatusUnprocessableEntity, err, nil)
		return
	}
	response.Error(c, err, nil)
}
