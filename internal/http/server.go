package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

type Server struct {
	Engine *gin.Engine

	srv             *http.Server
	shutdownTimeout time.Duration
}

func NewServer(cfg ServerConfig, engine *gin.Engine) *Server {
	return &Server{
		Engine: engine,
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           engine,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	return serve(ctx, s.srv, s.shutdownTimeout)
}

// serve is shared by the API and metrics listeners.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		if shutdownTimeout <= 0 {
			shutdownTimeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// NewMetricsServer exposes h on its own listener so scrapes bypass the API middleware.
func NewMetricsServer(addr string, h http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func ServeMetrics(ctx context.Context, srv *http.Server) error {
	return serve(ctx, srv, 5*time.Second)
}
