package api

import (
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// Option defines a functional option for configuring ManagerServer instances.
// Options are applied during NewManagerServer() construction.
type Option func(*ManagerServer)

// WithPrometheusMiddleware replaces the default Prometheus middleware. Use it
// when several gin engines in one process must share a registry.
func WithPrometheusMiddleware(p *ginprometheus.Prometheus) Option {
	return func(s *ManagerServer) {
		s.sharedPrometheus = p
	}
}
