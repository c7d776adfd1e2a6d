package healthprobe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/imroc/req/v3"

	apierrors "github.com/openmined/skeleton-api/internal/server/errors"
	"github.com/openmined/skeleton-api/internal/server/models"
	"github.com/openmined/skeleton-api/internal/server/services"
	"github.com/openmined/skeleton-api/internal/version"
)

const DefaultTimeout = 5 * time.Second

var ErrUnhealthy = errors.New("healthprobe: service unhealthy")

// Prober calls a remote health endpoint, typically from a container
// HEALTHCHECK or a deploy script.
type Prober struct {
	client *req.Client
}

// New returns a Prober. retries only applies to transport errors; an
// unhealthy answer is final.
func New(timeout time.Duration, retries int) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := req.C().
		SetTimeout(timeout).
		SetUserAgent(fmt.Sprintf("%s/%s healthprobe", version.AppName, version.Version)).
		SetCommonRetryCount(retries).
		SetCommonRetryFixedInterval(500 * time.Millisecond)

	return &Prober{client: client}
}

// Check fetches url and returns the decoded HealthInfo if the service
// reports itself OK.
func (p *Prober) Check(ctx context.Context, url string) (*models.HealthInfo, error) {
	var info models.HealthInfo
	var apiErr apierrors.ErrorResponse

	res, err := p.client.R().
		SetContext(ctx).
		SetSuccessResult(&info).
		SetErrorResult(&apiErr).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("healthprobe: GET %s: %w", url, err)
	}

	if res.IsErrorState() {
		if apiErr.Error != "" {
			return nil, fmt.Errorf("%w: http %d: %s", ErrUnhealthy, res.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("%w: http %d", ErrUnhealthy, res.StatusCode)
	}

	if info.Status != services.StatusOK {
		return nil, fmt.Errorf("%w: status %q", ErrUnhealthy, info.Status)
	}

	return &info, nil
}
