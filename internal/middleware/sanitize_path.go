package middleware

import (
	"github.com/gin-gonic/gin"

	"calendar-server/internal/utils"
)

// SanitizePath strips any HTML from the request path before routing handlers see it.
func SanitizePath() gin.HandlerFunc {
	v := utils.GetValidator()
	return func(c *gin.Context) {
		c.Request.URL.Path = v.Sanitize(c.Request.URL.Path)
		c.Next()
	}
}
