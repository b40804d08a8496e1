package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
	maxRequestIDLen = 128
)

// requestIDMiddleware tags every request with an id (reusing a sane incoming
// X-Request-ID) and logs it once the handler chain is done.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	start := time.Now()

	id := c.GetHeader(requestIDHeader)
	if id == "" || len(id) > maxRequestIDLen {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)

	c.Next()

	h.log.Infow("http_request",
		"request_id", id,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

// requestID returns the id set by requestIDMiddleware, if any.
func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
