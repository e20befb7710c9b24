package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/api-blog/internal/config"
	"github.com/MKhiriev/api-blog/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop
// was requested.
const shutdownTimeout = 10 * time.Second

type server struct {
	address    string
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &server{
		address:    cfg.HTTPAddress,
		httpServer: newHTTPServer(handler, cfg),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.address, err)
	}

	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")

	served := make(chan error, 1)
	go func() {
		served <- s.httpServer.RunServer(ln)
	}()

	select {
	case err = <-served:
		if err != nil {
			return fmt.Errorf("HTTP server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("error during HTTP server shutdown")
	}
	if err = <-served; err != nil {
		return fmt.Errorf("HTTP server stopped: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
