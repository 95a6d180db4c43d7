// Package metrics exposes the service's Prometheus metrics.
//
// Metrics live in an explicitly created [Registry] rather than the global
// default registerer, so tests can build independent instances. The registry
// also carries the Go runtime and process collectors and is served at
// /metrics by [Registry.Handler].
package metrics
