package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moyoez/portfolio-resolver/api/controllers"
	"github.com/moyoez/portfolio-resolver/tool"
)

const requestIDHeader = "X-Request-Id"

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = tool.GenerateRandomUUID()
		}
		c.Set(controllers.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		tool.DefaultLogger.Debugf("[API] %s %s -> %d (%s, requestId=%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), c.GetString(controllers.RequestIDKey))
	}
}
