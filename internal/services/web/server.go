package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/translate.space/internal/platform/metrics"
	"github.com/louisbranch/translate.space/internal/platform/timeouts"
	"github.com/louisbranch/translate.space/internal/services/web/app"
	"github.com/louisbranch/translate.space/internal/services/web/modules"
	"github.com/louisbranch/translate.space/internal/services/web/modules/translate"
	"github.com/louisbranch/translate.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translate.space/internal/services/web/platform/observability"
	"github.com/louisbranch/translate.space/internal/services/web/platform/passwordgate"
	"github.com/louisbranch/translate.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translate.space/internal/services/web/routepath"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// MetricsAddr enables the Prometheus listener when non-empty.
	MetricsAddr         string
	Gateway             translate.Gateway
	Gate                *passwordgate.Gate
	RequestSchemePolicy requestmeta.SchemePolicy
	Metrics             *metrics.Metrics
	Logger              *zap.Logger
}

// Server hosts the web HTTP listeners.
type Server struct {
	httpAddr      string
	metricsAddr   string
	httpServer    *http.Server
	metricsServer *http.Server
	logger        *zap.Logger
}

// NewHandler builds the root handler with shared middleware applied.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Gate == nil {
		return nil, errors.New("password gate is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	deps := modules.Dependencies{
		Gateway: cfg.Gateway,
		Gate:    cfg.Gate,
		Metrics: cfg.Metrics,
		Logger:  logger,
	}
	root, err := app.Compose(app.ComposeInput{
		Authenticated:       cfg.Gate.Authenticated,
		PublicModules:       modules.DefaultPublicModules(deps),
		ProtectedModules:    modules.DefaultProtectedModules(deps),
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose web modules: %w", err)
	}
	return httpx.Chain(root,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer builds a configured web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logger,
	}
	if metricsAddr := strings.TrimSpace(cfg.MetricsAddr); metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle(http.MethodGet+" "+routepath.Metrics, cfg.Metrics.Handler())
		s.metricsAddr = metricsAddr
		s.metricsServer = &http.Server{
			Addr:              metricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: timeouts.ReadHeader,
		}
	}
	return s, nil
}

// ListenAndServe binds the configured listeners and serves until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	httpListener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}
	var metricsListener net.Listener
	if s.metricsServer != nil {
		metricsListener, err = net.Listen("tcp", s.metricsAddr)
		if err != nil {
			_ = httpListener.Close()
			return fmt.Errorf("listen metrics: %w", err)
		}
	}
	return s.Serve(ctx, httpListener, metricsListener)
}

// Serve serves on the supplied listeners until ctx ends or a listener fails.
// metricsListener may be nil.
func (s *Server) Serve(ctx context.Context, httpListener net.Listener, metricsListener net.Listener) error {
	group, groupCtx := errgroup.WithContext(ctx)

	s.logger.Info("web listening", zap.String("addr", httpListener.Addr().String()))
	group.Go(func() error {
		return serve(s.httpServer, httpListener, "http")
	})
	if s.metricsServer != nil && metricsListener != nil {
		s.logger.Info("metrics listening", zap.String("addr", metricsListener.Addr().String()))
		group.Go(func() error {
			return serve(s.metricsServer, metricsListener, "metrics")
		})
	}
	group.Go(func() error {
		<-groupCtx.Done()
		return s.shutdown()
	})

	return group.Wait()
}

func serve(server *http.Server, listener net.Listener, name string) error {
	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", name, err)
	}
	return nil
}

func (s *Server) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()

	var errs []error
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
		}
	}
	return errors.Join(errs...)
}
