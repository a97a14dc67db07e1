package service

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	vaultmetrics "strongroom/internal/vault/metrics"
)

// serviceConfig holds optional dependencies for the vault service.
type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *vaultmetrics.Metrics
	tracer         trace.Tracer
}

// Option configures the service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(c *serviceConfig) {
		c.auditPublisher = publisher
	}
}

func WithMetrics(m *vaultmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}
