package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/orgball2608/scenefeed/internal/metrics"
	"github.com/orgball2608/scenefeed/internal/ratelimit"
	"github.com/orgball2608/scenefeed/internal/session"
	"github.com/orgball2608/scenefeed/pkg/config"
	"github.com/orgball2608/scenefeed/pkg/logger"
	"go.uber.org/fx"
)

const viewerHeader = "X-Viewer-Email"

type Opts struct {
	fx.In

	Session session.Client
	Metrics *metrics.Metrics
	Logger  logger.Logger
	Config  *config.Config
}

type Server struct {
	session session.Client
	limiter ratelimit.Limiter
	metrics *metrics.Metrics
	logger  logger.Logger
	config  *config.Config
}

func New(opts Opts) *Server {
	return &Server{
		session: opts.Session,
		limiter: ratelimit.NewInMemoryLimiter(
			opts.Config.RateLimit.Requests,
			opts.Config.RateLimit.Per,
			opts.Config.RateLimit.Burst,
		),
		metrics: opts.Metrics,
		logger:  opts.Logger.WithComponent("HTTP"),
		config:  opts.Config,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.healthCheck)
	mux.Handle("GET /metrics", s.metrics.Handler())

	mux.Handle("GET /feed", s.limited(s.feed))
	mux.Handle("GET /map", s.limited(s.mapView))
	mux.Handle("GET /filters", s.limited(s.filters))
	mux.Handle("POST /location", s.limited(s.location))
	mux.Handle("POST /scroll", s.limited(s.scroll))
	mux.Handle("POST /follow", s.limited(s.follow))
	mux.Handle("POST /saved/{id}", s.limited(s.toggleSaved))

	return mux
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.App.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", "error", err)
		}
	}()

	s.logger.Info(fmt.Sprintf("Starting server on :%d", s.config.App.Port))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Server failed", "error", err)
		return err
	}
	return nil
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Health check request received", "method", r.Method, "url", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
