package healthprobe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmined/skeleton-api/internal/server"
)

func newSkeletonServer(t *testing.T, exampleCount int) *httptest.Server {
	t.Helper()
	cfg := server.DefaultConfig()
	cfg.StaticDir = ""
	cfg.ExampleCount = exampleCount

	srv, err := server.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestCheck_Healthy(t *testing.T) {
	ts := newSkeletonServer(t, 3)

	info, err := New(time.Second, 0).Check(context.Background(), ts.URL+"/api/health")
	require.NoError(t, err)
	assert.Equal(t, "OK", info.Status)
	assert.Equal(t, 3, info.ExampleCount)
	assert.NotEmpty(t, info.Timestamp)
}

func TestCheck_WrongPath(t *testing.T) {
	ts := newSkeletonServer(t, 0)

	_, err := New(time.Second, 0).Check(context.Background(), ts.URL+"/api/healthz")
	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.ErrorContains(t, err, "404")
	assert.ErrorContains(t, err, "Not found")
}

func TestCheck_NotOK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"DEGRADED"}`))
	}))
	t.Cleanup(ts.Close)

	_, err := New(time.Second, 0).Check(context.Background(), ts.URL)
	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.ErrorContains(t, err, "DEGRADED")
}

func TestCheck_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := New(200*time.Millisecond, 0).Check(context.Background(), url)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnhealthy)
}
