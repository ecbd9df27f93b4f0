package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "translator"

// Translation outcome labels.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeConfig      = "config_error"
	OutcomeTransport   = "transport_error"
	OutcomeEmptyResult = "empty_result"
)

// Login result labels.
const (
	LoginSuccess  = "success"
	LoginEmpty    = "empty"
	LoginRejected = "rejected"
)

// Metrics groups the collectors recorded by the web service.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	translations *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	logins       *prometheus.CounterVec
	gatherer     prometheus.Gatherer
}

// New registers the service collectors on a fresh registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry registers the service collectors on reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "translations_total",
			Help:      "Translation requests by model and outcome.",
		}, []string{"model", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_call_duration_seconds",
			Help:      "Duration of remote model calls, including the streamed body.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"model"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Password gate login attempts by result.",
		}, []string{"result"}),
		gatherer: reg,
	}
	reg.MustRegister(m.translations, m.latency, m.logins)
	return m
}

// ObserveTranslation counts one translation outcome.
func (m *Metrics) ObserveTranslation(model string, outcome string) {
	if m == nil {
		return
	}
	m.translations.WithLabelValues(model, outcome).Inc()
}

// ObserveModelCall records the duration of one remote model call.
func (m *Metrics) ObserveModelCall(model string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(model).Observe(elapsed.Seconds())
}

// ObserveLogin counts one login attempt.
func (m *Metrics) ObserveLogin(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
