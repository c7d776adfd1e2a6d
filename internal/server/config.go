package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/openmined/skeleton-api/internal/server/middlewares"
)

const (
	DefaultPort       = 4000
	DefaultCORSOrigin = middlewares.AllOrigins
	DefaultStaticDir  = "public"
	APIPrefix         = "/api"
)

var (
	ErrInvalidPort       = errors.New("config: port must be between 0 and 65535")
	ErrInvalidCORSOrigin = errors.New("config: cors origin must be '*' or an http(s) origin")
	ErrUnknownStage      = errors.New("config: unknown pipeline stage")
	ErrRequiredStage     = errors.New("config: pipeline stage cannot be disabled")
)

type Config struct {
	HTTP HTTPConfig

	// CORSOrigin is the single allowed origin, "*" for any.
	CORSOrigin string

	// StaticDir is served verbatim, "/" maps to its index.html.
	StaticDir string

	// ExampleCount is what the data provider reports.
	ExampleCount int

	// RateLimit in limiter notation ("100-M"). Empty disables the stage.
	RateLimit string

	// BodyLimit caps JSON request bodies, in bytes.
	BodyLimit int64

	// DisabledStages lists pipeline stages to skip, by name.
	DisabledStages []string
}

type HTTPConfig struct {
	Host     string
	Port     int
	CertFile string
	KeyFile  string
}

func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Port: DefaultPort,
		},
		CORSOrigin: DefaultCORSOrigin,
		StaticDir:  DefaultStaticDir,
		BodyLimit:  middlewares.DefaultBodyLimit,
	}
}

// Addr is the listen address, host may be empty for all interfaces.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

func (c *Config) Validate() error {
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.HTTP.Port)
	}

	origin := strings.TrimSpace(c.CORSOrigin)
	if origin != "" && origin != middlewares.AllOrigins &&
		!strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
		return fmt.Errorf("%w: %q", ErrInvalidCORSOrigin, c.CORSOrigin)
	}
	c.CORSOrigin = origin

	if (c.HTTP.CertFile == "") != (c.HTTP.KeyFile == "") {
		return errors.New("config: cert_file and key_file must be set together")
	}

	for _, name := range c.DisabledStages {
		if !isKnownStage(name) {
			return fmt.Errorf("%w: %q", ErrUnknownStage, name)
		}
		if isRequiredStage(name) {
			return fmt.Errorf("%w: %q", ErrRequiredStage, name)
		}
	}

	return nil
}
