// Package metrics provides operational metrics collection.
//
// Metrics are exposed in Prometheus format on a dedicated listener so the
// password gate never sits in front of scrapers.
//
// # Metric Categories
//
//   - Translations: outcome counts by model and outcome class
//   - Latency: remote model call duration by model
//   - Access: login attempts by result
package metrics
