package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apierrors "github.com/openmined/skeleton-api/internal/server/errors"
)

// ErrorHandler renders errors recorded with ctx.Error and recovers panics.
// Clients only ever see the AppError message; causes go to the log.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Error("panic recovered",
				"error", rec,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()),
			)
			_ = c.Error(fmt.Errorf("panic: %v", rec))
			render(c, apierrors.Internal(nil))
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := apierrors.AsAppError(c.Errors.Last().Err)
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("server error",
				"error", appErr.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", appErr.Status,
			)
		} else {
			logger.Warn("client error",
				"error", appErr.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", appErr.Status,
			)
		}

		render(c, appErr)
	}
}

func render(c *gin.Context, appErr *apierrors.AppError) {
	// a handler that already started streaming keeps its response
	if c.Writer.Written() {
		return
	}
	c.AbortWithStatusJSON(appErr.Status, appErr.Response())
}
