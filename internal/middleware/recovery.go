package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/httpx"
)

// Recovery turns a panic into a 500 with the standard error body.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDKey),
					"stack", string(debug.Stack()),
				)
				httpx.ErrorJSON(c, httpx.CodeInternal, "internal server error", "", http.StatusInternalServerError)
			}
		}()

		c.Next()
	}
}
