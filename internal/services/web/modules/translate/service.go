package translate

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/translate.space/internal/platform/errors"
	"github.com/louisbranch/translate.space/internal/platform/metrics"
	"github.com/louisbranch/translate.space/internal/services/translator"
)

// Form field names posted by the translate page.
const (
	fieldText           = "text"
	fieldSourceLanguage = "source_language"
	fieldTargetLanguage = "target_language"
	fieldModel          = "model"
	fieldLevel          = "level"
	fieldAPIKey         = "api_key"
	fieldPromptTemplate = "prompt_template"
)

// submission is one parsed form post.
type submission struct {
	request translator.Request
	apiKey  string
}

type service struct {
	gateway Gateway
	metrics *metrics.Metrics
}

func newService(gateway Gateway, m *metrics.Metrics) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, metrics: m}
}

// defaultRequest is the state of a fresh form.
func (s service) defaultRequest() translator.Request {
	modelID := s.gateway.DefaultModel()
	return translator.Request{
		SourceLanguage: translator.DefaultSourceLanguage,
		TargetLanguage: translator.DefaultTargetLanguage,
		Model:          modelID,
		Level:          levelFor(modelID, ""),
		PromptTemplate: translator.DefaultPromptTemplate,
	}
}

// parseSubmission normalizes the posted form. Blank languages and unknown
// models and levels fall back to their defaults. Unknown language codes are
// kept as posted and rejected by translate.
func (s service) parseSubmission(r *http.Request) submission {
	modelID := translator.NormalizeModel(r.PostFormValue(fieldModel), s.gateway.DefaultModel())
	return submission{
		request: translator.Request{
			Text:           strings.TrimSpace(r.PostFormValue(fieldText)),
			SourceLanguage: translator.NormalizeLanguage(r.PostFormValue(fieldSourceLanguage), translator.DefaultSourceLanguage),
			TargetLanguage: translator.NormalizeLanguage(r.PostFormValue(fieldTargetLanguage), translator.DefaultTargetLanguage),
			Model:          modelID,
			Level:          levelFor(modelID, r.PostFormValue(fieldLevel)),
			PromptTemplate: r.PostFormValue(fieldPromptTemplate),
		},
		apiKey: strings.TrimSpace(r.PostFormValue(fieldAPIKey)),
	}
}

// translate validates sub and dispatches it. Invalid submissions never reach
// the gateway.
func (s service) translate(ctx context.Context, sub submission) (string, error) {
	if err := translator.Validate(sub.request); err != nil {
		s.metrics.ObserveTranslation(sub.request.Model, metrics.OutcomeInvalid)
		return "", err
	}
	translated, err := s.gateway.Translate(ctx, sub.apiKey, sub.request)
	s.metrics.ObserveTranslation(sub.request.Model, outcomeOf(err))
	if err != nil {
		return "", err
	}
	return translated, nil
}

func levelFor(modelID string, raw string) translator.Level {
	if level, ok := translator.ParseLevel(raw); ok {
		return level
	}
	if model, ok := translator.LookupModel(modelID); ok {
		return model.DefaultLevel()
	}
	return translator.DefaultLevel
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	switch apperrors.CodeOf(err) {
	case apperrors.CodeEmptyResult:
		return metrics.OutcomeEmptyResult
	case apperrors.CodeMissingAPIKey:
		return metrics.OutcomeConfig
	case apperrors.CodeEmptyInput, apperrors.CodeSameLanguage, apperrors.CodeUnsupportedLanguage, apperrors.CodeUnsupportedLevel:
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeTransport
	}
}
