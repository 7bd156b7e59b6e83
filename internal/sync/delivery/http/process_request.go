package http

import (
	"github.com/gin-gonic/gin"
)

// processListQuery binds the listname query parameter.
func (h *handler) processListQuery(c *gin.Context) (listQuery, error) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, err
	}
	if q.ListName == "" {
		q.ListName = h.defaultList
	}
	return q, nil
}

// processOutlineReq binds the listname query parameter and the outline body,
// then decodes the outline.
func (h *handler) processOutlineReq(c *gin.Context) (outlineReq, error) {
	var req outlineReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.ListName == "" {
		req.ListName = h.defaultList
	}
	return req, req.validate()
}
