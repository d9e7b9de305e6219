package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"minute-planner/config"
	"minute-planner/logger"
)

type MinutePlannerHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	cfg       config.ServerConfig
	log       logger.Logger
}

func NewMinutePlannerHttpServer(router *Router, muxRouter *mux.Router, cfg config.ServerConfig, log logger.Logger) *MinutePlannerHttpServer {
	return &MinutePlannerHttpServer{
		router:    router,
		muxRouter: muxRouter,
		cfg:       cfg,
		log:       log.With(map[string]interface{}{"component": "http_server"}),
	}
}

// Start registers the routes and serves until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *MinutePlannerHttpServer) Start(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting server", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("Shutting down the server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.log.Info("Server exiting", nil)
	return nil
}
