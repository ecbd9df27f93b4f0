package translator

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/louisbranch/translate.space/internal/platform/metrics"
	"github.com/louisbranch/translate.space/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const tracerName = "github.com/louisbranch/translate.space/internal/services/translator"

// ContentStreamer is the subset of the Gemini models API the client calls.
type ContentStreamer interface {
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

// StreamerFactory builds a ContentStreamer bound to apiKey.
type StreamerFactory func(ctx context.Context, apiKey string) (ContentStreamer, error)

// Config configures a Client.
type Config struct {
	APIKey       string
	DefaultModel string
	// Timeout bounds each remote call. Zero uses timeouts.TranslateRequest.
	Timeout time.Duration
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// NewStreamer overrides the Gemini SDK client, mainly for tests.
	NewStreamer StreamerFactory
}

// Client translates text through one streamed model call per request.
type Client struct {
	streamer     ContentStreamer
	defaultModel string
	timeout      time.Duration
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// New builds a Client. A blank API key is a configuration error.
func New(ctx context.Context, cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	defaultModel := strings.TrimSpace(cfg.DefaultModel)
	if defaultModel == "" {
		defaultModel = DefaultModelID
	}
	if _, ok := LookupModel(defaultModel); !ok {
		return nil, fmt.Errorf("unsupported default model %q", defaultModel)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.TranslateRequest
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	factory := cfg.NewStreamer
	if factory == nil {
		factory = NewGeminiStreamer
	}
	streamer, err := factory(ctx, apiKey)
	if err != nil {
		return nil, translationFailed(fmt.Errorf("create gemini client: %w", err))
	}

	return &Client{
		streamer:     streamer,
		defaultModel: defaultModel,
		timeout:      timeout,
		logger:       logger,
		metrics:      cfg.Metrics,
	}, nil
}

// NewGeminiStreamer builds a Gemini API client for apiKey.
func NewGeminiStreamer(ctx context.Context, apiKey string) (ContentStreamer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

// DefaultModel returns the model used for unknown model ids.
func (c *Client) DefaultModel() string {
	return c.defaultModel
}

// Translate sends req to the remote model and returns the trimmed result.
//
// Callers validate req first. Every remote failure, including timeout and
// cancellation, is returned as ErrTranslationFailed with the cause attached.
func (c *Client) Translate(ctx context.Context, req Request) (string, error) {
	modelID := NormalizeModel(req.Model, c.defaultModel)
	model, _ := LookupModel(modelID)
	prompt := BuildPrompt(req.PromptTemplate, req.SourceLanguage, req.TargetLanguage, req.Text)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "translator.Translate")
	defer span.End()
	span.SetAttributes(
		attribute.String("translator.model", modelID),
		attribute.String("translator.source_language", req.SourceLanguage),
		attribute.String("translator.target_language", req.TargetLanguage),
	)

	started := time.Now()
	var out strings.Builder
	var streamErr error
	for resp, err := range c.streamer.GenerateContentStream(ctx, modelID, genai.Text(prompt), generateConfig(model, req.Level)) {
		if err != nil {
			streamErr = err
			break
		}
		if resp == nil {
			continue
		}
		out.WriteString(resp.Text())
	}
	c.metrics.ObserveModelCall(modelID, time.Since(started))

	if streamErr != nil {
		c.logger.Warn("translation request failed",
			zap.String("model", modelID),
			zap.Error(streamErr),
		)
		span.RecordError(streamErr)
		span.SetStatus(codes.Error, "remote call failed")
		return "", translationFailed(streamErr)
	}

	translated := strings.TrimSpace(out.String())
	if translated == "" {
		span.SetStatus(codes.Error, "empty result")
		return "", ErrEmptyResult
	}
	return translated, nil
}

// generateConfig maps the model policy onto the Gemini thinking options.
func generateConfig(model Model, level Level) *genai.GenerateContentConfig {
	thinking := &genai.ThinkingConfig{}
	switch model.Thinking {
	case ThinkingLevel:
		if !model.SupportsLevel(level) {
			level = model.DefaultLevel()
		}
		thinking.ThinkingLevel = genai.ThinkingLevel(strings.ToUpper(string(level)))
	default:
		thinking.ThinkingBudget = genai.Ptr(dynamicBudget)
	}
	return &genai.GenerateContentConfig{ThinkingConfig: thinking}
}
