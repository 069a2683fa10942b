package fleetapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/autopeer-io/carview/internal/pkg/metrics"
	"github.com/autopeer-io/carview/pkg/log"
	"github.com/autopeer-io/carview/pkg/options"
)

// Server serves the car telemetry API from a Store.
type Server struct {
	server  *http.Server
	options *options.HttpOptions
	store   *Store
}

// NewServer creates a Server; it does not listen until Start.
func NewServer(opts *options.HttpOptions, store *Store) *Server {
	s := &Server{
		options: opts,
		store:   store,
	}
	s.server = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestID, recovery)

	r.HandleFunc("/api/car/{licensePlate}", s.handleGetCar).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/readyz", s.handleReadyz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return accessLog(r)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	log.Info("Starting fleet API", "addr", s.server.Addr, "records", s.store.Len())

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.options.ShutdownTimeout)
		defer cancel()
		log.Info("Shutting down fleet API")
		return s.server.Shutdown(shutdownCtx)
	}
}
