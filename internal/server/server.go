package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/veilvault/veilvault/internal/config"
	"github.com/veilvault/veilvault/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the gateway server around an already-initialized HTTP
// handler (the router returned by the handler package's Init).
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoTransportConfigured
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	drained := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(drained)
	}()

	s.logger.Info().Msg("gateway HTTP server starting")
	go s.httpServer.RunServer()

	<-drained
	s.logger.Info().Msg("gateway shut down gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
