package server

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/openmined/skeleton-api/internal/server/middlewares"
)

// Pipeline stage names. The order of stageOrder is the order requests
// travel in; responses unwind in reverse.
const (
	StageLogger      = "logger"      // post: access log line
	StageSecurity    = "security"    // pre: protective headers
	StageCORS        = "cors"        // pre: allow-origin headers, answers preflight
	StageRateLimit   = "ratelimit"   // pre: 429 once the per-IP budget is spent
	StageCompression = "compression" // post: gzip body when accepted
	StageErrors      = "errors"      // post: recorded errors and panics become JSON
	StageJSONBody    = "jsonbody"    // pre: buffer and validate JSON bodies
	StageStatic      = "static"      // pre: serve files, short-circuits on hit
)

var stageOrder = []string{
	StageLogger,
	StageSecurity,
	StageCORS,
	StageRateLimit,
	StageCompression,
	StageErrors,
	StageJSONBody,
	StageStatic,
}

// requiredStages cannot be disabled. Handlers only record failures with
// ctx.Error and rely on the errors stage to write the response.
var requiredStages = []string{StageErrors}

func isKnownStage(name string) bool {
	return slices.Contains(stageOrder, name)
}

func isRequiredStage(name string) bool {
	return slices.Contains(requiredStages, name)
}

// Stage is one named middleware in the request pipeline.
type Stage struct {
	Name    string
	Enabled bool
	Handler gin.HandlerFunc
}

type Pipeline []Stage

// NewPipeline builds every stage in order from config. Disabled stages stay
// in the list so the layout is visible in logs.
func NewPipeline(config *Config, logger *slog.Logger) (Pipeline, error) {
	enabled := func(name string) bool {
		return isRequiredStage(name) || !slices.Contains(config.DisabledStages, name)
	}

	var rateLimit gin.HandlerFunc
	if config.RateLimit != "" && enabled(StageRateLimit) {
		h, err := middlewares.RateLimiter(config.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("rate limit stage: %w", err)
		}
		rateLimit = h
	}

	p := Pipeline{
		{Name: StageLogger, Enabled: enabled(StageLogger), Handler: middlewares.Logger(logger)},
		{Name: StageSecurity, Enabled: enabled(StageSecurity), Handler: middlewares.SecurityHeaders()},
		{Name: StageCORS, Enabled: enabled(StageCORS), Handler: middlewares.CORS(config.CORSOrigin)},
		{Name: StageRateLimit, Enabled: rateLimit != nil, Handler: rateLimit},
		{Name: StageCompression, Enabled: enabled(StageCompression), Handler: middlewares.Gzip()},
		{Name: StageErrors, Enabled: enabled(StageErrors), Handler: middlewares.ErrorHandler(logger)},
		{Name: StageJSONBody, Enabled: enabled(StageJSONBody), Handler: middlewares.JSONBody(config.BodyLimit)},
		{Name: StageStatic, Enabled: enabled(StageStatic) && config.StaticDir != "", Handler: middlewares.Static(config.StaticDir)},
	}
	return p, nil
}

// Handlers returns the enabled handlers in order.
func (p Pipeline) Handlers() []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, len(p))
	for _, s := range p {
		if s.Enabled && s.Handler != nil {
			handlers = append(handlers, s.Handler)
		}
	}
	return handlers
}

// Names returns the enabled stage names in order.
func (p Pipeline) Names() []string {
	names := make([]string, 0, len(p))
	for _, s := range p {
		if s.Enabled && s.Handler != nil {
			names = append(names, s.Name)
		}
	}
	return names
}
