package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"org-tasks-sync/pkg/log"
)

// TraceIDHeader carries the request trace id in both directions.
const TraceIDHeader = "X-Trace-Id"

// TraceID attaches a trace id to the request context, reusing the caller's
// X-Trace-Id when present, and logs the request once it completes.
func (m Middleware) TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(TraceIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		ctx := log.SetTraceID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceIDHeader, id)

		start := time.Now()
		c.Next()
		m.l.Infof(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
