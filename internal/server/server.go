package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	config   *Config
	logger   *slog.Logger
	svc      *Services
	pipeline Pipeline
	server   *http.Server
}

func New(config *Config, logger *slog.Logger) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	pipeline, err := NewPipeline(config, logger)
	if err != nil {
		return nil, err
	}

	svc := NewServices(config)

	return &Server{
		config:   config,
		logger:   logger,
		svc:      svc,
		pipeline: pipeline,
		server: &http.Server{
			Addr:              config.Addr(),
			Handler:           SetupRoutes(pipeline, svc),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the full request pipeline, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start listens on the configured address and blocks until ctx is done or
// the listener fails.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.config.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve runs the server on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("server start",
		"addr", ln.Addr().String(),
		"cors_origin", s.config.CORSOrigin,
		"static_dir", s.config.StaticDir,
		"body_limit", humanize.IBytes(uint64(s.config.BodyLimit)),
		"pipeline", s.pipeline.Names(),
	)
	defer s.logger.Info("server stop")

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := s.serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		return s.Stop(context.Background())
	})

	return eg.Wait()
}

func (s *Server) serve(ln net.Listener) error {
	if s.config.HTTP.CertFile != "" && s.config.HTTP.KeyFile != "" {
		s.logger.Info("server start tls", "cert", s.config.HTTP.CertFile, "key", s.config.HTTP.KeyFile)
		return s.server.ServeTLS(ln, s.config.HTTP.CertFile, s.config.HTTP.KeyFile)
	}
	return s.server.Serve(ln)
}

// Stop waits up to shutdownTimeout for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
