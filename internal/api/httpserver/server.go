// Package httpserver wraps the standard library HTTP server with the
// service's configuration and lifecycle conventions.
package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/receiptworks/points-service/internal/config"
	"github.com/receiptworks/points-service/pkg/logger"
)

// Server is a configured http.Server.
type Server struct {
	server *http.Server
	log    *logger.Logger
}

// New constructs a server for the given handler.
func New(cfg config.ServerConfig, log *logger.Logger, handler http.Handler) *Server {
	if log == nil {
		log = logger.NewDefault("httpserver")
	}
	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
		},
		log: log,
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start begins serving and blocks until the server exits.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server, honouring the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
