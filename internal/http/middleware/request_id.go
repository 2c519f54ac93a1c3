package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taskletix.app/intake/common/id"
	"taskletix.app/intake/common/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags the request context with a snowflake id so every log line
// of the request carries request_id. The id is echoed in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := id.New()
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{RequestID: logger.Ptr(reqID)})
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, strconv.FormatInt(reqID, 10))
		c.Next()
	}
}
