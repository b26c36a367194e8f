// Package server exposes the resume extraction and job search pipeline over
// HTTP. It owns no durable state: every request carries everything it needs.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fastapply/fastapply/internal/aggregator"
	"github.com/fastapply/fastapply/internal/profile"
)

type Server struct {
	httpServer *http.Server
	aggregator *aggregator.Aggregator
	profiles   *profile.Extractor
	logger     *zap.Logger
}

func New(addr string, agg *aggregator.Aggregator, profiles *profile.Extractor, logger *zap.Logger) *Server {
	s := &Server{
		aggregator: agg,
		profiles:   profiles,
		logger:     logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/extract", s.handleExtract)
	mux.HandleFunc("POST /api/search", s.handleSearch)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the request handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run listens until the context is canceled or a termination signal arrives,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case <-stop:
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
