package services

import (
	"context"
	"fmt"
	"time"

	"github.com/openmined/skeleton-api/internal/server/models"
	"github.com/openmined/skeleton-api/internal/version"
)

const (
	StatusOK      = "OK"
	StatusMessage = "Service is running properly"

	// TimestampFormat is ISO-8601 with millisecond precision, e.g. 2025-01-02T03:04:05.678Z
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"
)

// CountProvider reports how many examples are stored.
type CountProvider interface {
	Count(ctx context.Context) (int, error)
}

// InfoService builds the health payload.
type InfoService struct {
	provider CountProvider
	now      func() time.Time
}

func NewInfoService(provider CountProvider) *InfoService {
	return &InfoService{
		provider: provider,
		now:      time.Now,
	}
}

// GetInfo assembles a fresh HealthInfo. Provider errors are returned as-is
// (wrapped), there is nothing to recover from at this layer.
func (s *InfoService) GetInfo(ctx context.Context) (*models.HealthInfo, error) {
	ts := s.now().UTC().Format(TimestampFormat)

	count, err := s.provider.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count examples: %w", err)
	}

	return &models.HealthInfo{
		Status:       StatusOK,
		Timestamp:    ts,
		Message:      StatusMessage,
		Version:      version.Version,
		ExampleCount: count,
	}, nil
}
