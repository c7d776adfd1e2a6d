package middlewares

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	apierrors "github.com/openmined/skeleton-api/internal/server/errors"
)

// DefaultBodyLimit matches the usual 100kb cap for JSON APIs.
const DefaultBodyLimit int64 = 100 << 10

// JSONBody buffers and validates JSON request bodies before dispatch.
// Handlers can bind the buffered body with ShouldBindBodyWith or read
// Request.Body again. Non-JSON requests pass through untouched.
func JSONBody(limit int64) gin.HandlerFunc {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 || !isJSONContentType(c.ContentType()) {
			c.Next()
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				_ = c.Error(apierrors.TooLarge(fmt.Errorf("body exceeds %s", humanize.IBytes(uint64(limit)))))
			} else {
				_ = c.Error(apierrors.BadRequest(apierrors.MsgInvalidJSON, err))
			}
			c.Abort()
			return
		}

		if len(bytes.TrimSpace(body)) > 0 && !jsonValid(body) {
			_ = c.Error(apierrors.BadRequest(apierrors.MsgInvalidJSON, nil))
			c.Abort()
			return
		}

		c.Set(gin.BodyBytesKey, body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Next()
	}
}

func isJSONContentType(contentType string) bool {
	return contentType == gin.MIMEJSON || strings.HasSuffix(contentType, "+json")
}
