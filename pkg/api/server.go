// Package api exposes the registry's read-only administrative surface
// over HTTP: device lookup by MAC, MAC+VLAN, IPv4, and list-all.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ClassWYZ/floodlight/pkg/devicemanager"
	"github.com/ClassWYZ/floodlight/pkg/logger"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// Server serves the administrative device queries. It performs pure
// reads against the registry and never mutates device state.
type Server struct {
	devices    devicemanager.Service
	router     *mux.Router
	httpServer *http.Server
	log        logger.Logger
}

func NewServer(devices devicemanager.Service, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewTestLogger()
	}

	s := &Server{
		devices: devices,
		router:  mux.NewRouter(),
		log:     log,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/api/devices", s.handleListDevices).Methods(http.MethodGet)
	s.router.HandleFunc("/api/devices/key/{key}", s.handleGetDevice).Methods(http.MethodGet)
	s.router.HandleFunc("/api/devices/mac/{mac}", s.handleGetDevicesByMAC).Methods(http.MethodGet)
	s.router.HandleFunc("/api/devices/ip/{ip}", s.handleGetDevicesByIP).Methods(http.MethodGet)
}

// Router exposes the handler for tests and for embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		s.log.Info().Str("addr", addr).Msg("Starting admin API server")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		return s.httpServer.Shutdown(shutdownCtx)
	}
}
