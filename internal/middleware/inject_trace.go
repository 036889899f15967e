package middleware

import (
	"github.com/gin-gonic/gin"

	"calendar-server/internal/utils"
)

// TraceHeader carries the request trace id back to the client and on to the backends.
const TraceHeader = "X-Trace-Id"

// InjectTrace stores a trace id in the gin context and echoes it in the response headers.
// An id sent by the gateway is reused so one request keeps the same id across services.
func InjectTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceId := c.GetHeader(TraceHeader)
		if traceId == "" {
			traceId = utils.GenerateTraceId()
		}
		c.Set(utils.TraceIdKey.String(), traceId)
		c.Header(TraceHeader, traceId)
		c.Next()
	}
}
