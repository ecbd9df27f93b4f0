// Package web parses web command configuration and launches the translation
// front-end.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	platformcmd "github.com/louisbranch/translate.space/internal/platform/cmd"
	"github.com/louisbranch/translate.space/internal/platform/logging"
	"github.com/louisbranch/translate.space/internal/platform/metrics"
	"github.com/louisbranch/translate.space/internal/services/translator"
	"github.com/louisbranch/translate.space/internal/services/web"
	"github.com/louisbranch/translate.space/internal/services/web/modules/translate"
	"github.com/louisbranch/translate.space/internal/services/web/platform/passwordgate"
	"github.com/louisbranch/translate.space/internal/services/web/platform/requestmeta"
	"go.uber.org/zap"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr    string `env:"TRANSLATOR_HTTP_ADDR" envDefault:"localhost:5000"`
	MetricsAddr string `env:"TRANSLATOR_METRICS_ADDR"`

	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	DefaultModel   string        `env:"TRANSLATOR_DEFAULT_MODEL" envDefault:"gemini-flash-latest"`
	RequestTimeout time.Duration `env:"TRANSLATOR_REQUEST_TIMEOUT" envDefault:"60s"`

	AppPassword         string        `env:"APP_PASSWORD"`
	SessionSecret       string        `env:"TRANSLATOR_SESSION_SECRET"`
	SessionTTL          time.Duration `env:"TRANSLATOR_SESSION_TTL" envDefault:"12h"`
	TrustForwardedProto bool          `env:"TRANSLATOR_TRUST_FORWARDED_PROTO"`

	LogLevel       string `env:"TRANSLATOR_LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"TRANSLATOR_LOG_DEVELOPMENT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Prometheus listen address (empty disables)")
	fs.StringVar(&cfg.DefaultModel, "default-model", cfg.DefaultModel, "Model used when a request names an unknown one")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "Timeout for each remote translation call")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return errors.New("http address is required")
	}
	if _, ok := translator.LookupModel(c.DefaultModel); !ok {
		return fmt.Errorf("unsupported default model %q", c.DefaultModel)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment}, platformcmd.ServiceWeb)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ServiceWeb, platformcmd.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := newServer(ctx, cfg, logger, metrics.New())
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func newServer(ctx context.Context, cfg Config, logger *zap.Logger, m *metrics.Metrics) (*web.Server, error) {
	resolver := translator.NewResolver(ctx, translator.Config{
		APIKey:       cfg.GeminiAPIKey,
		DefaultModel: cfg.DefaultModel,
		Timeout:      cfg.RequestTimeout,
		Logger:       logger,
		Metrics:      m,
	})
	if err := resolver.SharedErr(); err != nil {
		if !errors.Is(err, translator.ErrMissingAPIKey) {
			return nil, fmt.Errorf("init translator: %w", err)
		}
		logger.Warn("GEMINI_API_KEY is not set; requests must supply their own key")
	}

	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	gate, err := passwordgate.New(passwordgate.Config{
		Password:     cfg.AppPassword,
		Secret:       []byte(cfg.SessionSecret),
		TTL:          cfg.SessionTTL,
		SchemePolicy: policy,
	})
	if err != nil {
		return nil, fmt.Errorf("init password gate: %w", err)
	}
	if !gate.Enabled() {
		logger.Warn("APP_PASSWORD is not set; password gate disabled")
	}

	return web.NewServer(web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		MetricsAddr:         cfg.MetricsAddr,
		Gateway:             translate.NewResolverGateway(resolver),
		Gate:                gate,
		RequestSchemePolicy: policy,
		Metrics:             m,
		Logger:              logger,
	})
}
