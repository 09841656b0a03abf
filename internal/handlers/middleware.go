package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// requestLog tags every request with an ID and logs method, path,
// status and latency once the handler chain finishes.
func (h *Handler) requestLog(c *gin.Context) {
	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Header(requestIDHeader, reqID)

	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
}
