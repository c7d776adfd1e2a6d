package middlewares

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"

	apierrors "github.com/openmined/skeleton-api/internal/server/errors"
)

// RateLimiter limits requests per client IP. formattedRate uses the limiter
// notation, e.g. "100-M" for 100 requests per minute.
func RateLimiter(formattedRate string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("parse rate %q: %w", formattedRate, err)
	}

	store := memory.NewStore()
	return mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			appErr := apierrors.TooManyRequests()
			c.PureJSON(appErr.Status, appErr.Response())
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			appErr := apierrors.Internal(err)
			c.PureJSON(appErr.Status, appErr.Response())
		}),
	), nil
}
