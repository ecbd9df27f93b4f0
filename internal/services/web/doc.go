// Package web hosts the browser-facing translation service.
//
// The root handler is composed from modules: static assets and the login
// form are public, while the translation form and logout sit behind the
// password gate. An optional second listener exposes Prometheus metrics.
package web
