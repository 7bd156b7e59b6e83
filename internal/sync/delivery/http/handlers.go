package http

import (
	"github.com/gin-gonic/gin"

	"org-tasks-sync/internal/sync"
	"org-tasks-sync/pkg/response"
)

// Lists godoc
// @Summary     List task lists
// @Description Returns every task list of the authorized account.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} listsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lists [GET]
func (h *handler) Lists(c *gin.Context) {
	ctx := c.Request.Context()

	lists, err := h.uc.Lists(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Lists: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListsResp(lists))
}

// Pull godoc
// @Summary     Fetch a task list as outline text
// @Description Reads the remote task list and renders it as an outline.
// @Tags        Sync
// @Produce     json
// @Param       listname query string false "Task list title (default list when empty)"
// @Success     200 {object} outlineResp
// @Failure     404 {object} response.Resp "List not found"
// @Failure     502 {object} response.Resp "Remote list cannot be assembled"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/outline [GET]
func (h *handler) Pull(c *gin.Context) {
	ctx := c.Request.Context()

	q, err := h.processListQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Pull(ctx, sync.PullInput{ListName: q.ListName})
	if err != nil {
		h.l.Errorf(ctx, "uc.Pull: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newOutlineResp(q.ListName, out))
}

// Push godoc
// @Summary     Replace a task list
// @Description Erases the remote task list and recreates it from the outline.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       listname query string     false "Task list title (default list when empty)"
// @Param       body     body  outlineReq true  "Outline text"
// @Success     200 {object} pushResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "List not found"
// @Failure     422 {object} response.Resp "Malformed outline"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/outline [PUT]
func (h *handler) Push(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOutlineReq(c)
	if err != nil {
		h.writeRequestError(c, err)
		return
	}

	out, err := h.uc.Push(ctx, req.toPushInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Push: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newPushResp(req.ListName, out))
}

// Sync godoc
// @Summary     Three-way sync an outline with a task list
// @Description Merges the posted outline with the remote list against the last synced state.
// @Description On conflict nothing is written and the merged outline with markers is returned.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       listname query string     false "Task list title (default list when empty)"
// @Param       body     body  outlineReq true  "Locally edited outline text"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "List not found"
// @Failure     409 {object} response.Resp "Merge conflict"
// @Failure     422 {object} response.Resp "Malformed outline"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOutlineReq(c)
	if err != nil {
		h.writeRequestError(c, err)
		return
	}

	out, err := h.uc.Sync(ctx, req.toSyncInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		h.writeError(c, err)
		return
	}

	resp := h.newSyncResp(req.ListName, out)
	if out.Conflict {
		h.l.Warnf(ctx, "sync conflict on %q", req.ListName)
		response.Conflict(c, "merge conflict", resp)
		return
	}

	response.OK(c, resp)
}
