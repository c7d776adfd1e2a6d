package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "port", 4000)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "port=4000")
	// not a terminal, so no escape codes
	assert.NotContains(t, out, "\x1b[")
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
