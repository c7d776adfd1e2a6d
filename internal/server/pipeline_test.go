package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipeline_DefaultOrder(t *testing.T) {
	p, err := NewPipeline(DefaultConfig(), discardLogger())
	require.NoError(t, err)

	// rate limiting is opt-in
	assert.Equal(t, []string{
		StageLogger,
		StageSecurity,
		StageCORS,
		StageCompression,
		StageErrors,
		StageJSONBody,
		StageStatic,
	}, p.Names())
	assert.Len(t, p.Handlers(), len(p.Names()))
	assert.Len(t, p, len(stageOrder))
}

func TestNewPipeline_ListMatchesOrder(t *testing.T) {
	p, err := NewPipeline(DefaultConfig(), discardLogger())
	require.NoError(t, err)

	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.Name
	}
	assert.Equal(t, stageOrder, names)
}

func TestNewPipeline_RateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = "10-S"
	p, err := NewPipeline(cfg, discardLogger())
	require.NoError(t, err)
	assert.Contains(t, p.Names(), StageRateLimit)

	cfg.DisabledStages = []string{StageRateLimit}
	p, err = NewPipeline(cfg, discardLogger())
	require.NoError(t, err)
	assert.NotContains(t, p.Names(), StageRateLimit)

	cfg.DisabledStages = nil
	cfg.RateLimit = "fast"
	_, err = NewPipeline(cfg, discardLogger())
	assert.Error(t, err)
}

func TestNewPipeline_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisabledStages = []string{StageLogger, StageCompression}
	p, err := NewPipeline(cfg, discardLogger())
	require.NoError(t, err)

	assert.NotContains(t, p.Names(), StageLogger)
	assert.NotContains(t, p.Names(), StageCompression)
	assert.Contains(t, p.Names(), StageErrors)
}

func TestNewPipeline_ErrorsStageAlwaysOn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisabledStages = []string{StageErrors}
	p, err := NewPipeline(cfg, discardLogger())
	require.NoError(t, err)

	assert.Contains(t, p.Names(), StageErrors)
}

func TestNewPipeline_NoStaticDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StaticDir = ""
	p, err := NewPipeline(cfg, discardLogger())
	require.NoError(t, err)
	assert.NotContains(t, p.Names(), StageStatic)
}
