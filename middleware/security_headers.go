package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
)

// SecurityHeadersMiddleware sets the response headers every page carries
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set(headers.XContentTypeOptions, "nosniff")
		c.Writer.Header().Set(headers.XFrameOptions, "DENY")
		c.Writer.Header().Set("Referrer-Policy", "no-referrer")

		c.Next()
	}
}
