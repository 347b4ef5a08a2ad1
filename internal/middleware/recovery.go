// Package middleware provides HTTP middleware functions.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/courtside/nba-stats/internal/render"
)

// Recovery returns a middleware that recovers from panics, logs them and
// answers with the generic error page text.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Errorw("panic recovered",
					"error", fmt.Sprint(rec),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"client_ip", c.ClientIP(),
					"stack", string(debug.Stack()),
				)

				if !c.Writer.Written() {
					render.Fail(c)
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
