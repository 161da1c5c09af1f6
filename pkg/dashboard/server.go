package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/csviz/csviz-go/pkg/csviz/cache"
)

// Server wires the dataset directory, the result cache, and the HTTP
// handlers together.
type Server struct {
	cfg      Config
	log      *slog.Logger
	store    *cache.Store
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// New constructs a Server from cfg. The logger may be nil, in which case the
// default slog logger is used.
func New(cfg Config, log *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dashboard config: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	registry := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		log:      log,
		registry: registry,
		store: cache.NewStore(time.Duration(cfg.CacheTTL),
			cache.WithMetrics(registry, "csviz")),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "csviz_http_requests_total",
			Help: "Number of HTTP requests by handler and status code.",
		}, []string{"handler", "status"}),
	}
	registry.MustRegister(s.requests)
	return s, nil
}

// Handler returns the HTTP handler tree: the dataset menu, the figure and
// spec endpoints, Prometheus metrics, and optional static assets.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/datasets", s.handleDatasets)
	mux.HandleFunc("GET /api/figure/{name}", s.handleFigure)
	mux.HandleFunc("GET /api/spec/{name}", s.handleSpec)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	if s.cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.cfg.StaticDir)))
	}
	return mux
}

// ListenAndServe runs the server until the context is canceled, then shuts
// it down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("dashboard listening", "addr", s.cfg.Addr, "data_dir", s.cfg.DataDir)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
