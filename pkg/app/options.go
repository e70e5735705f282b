package app

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/vlite/pkg/metrics"
)

type options struct {
	logger  *slog.Logger
	metrics *metrics.Collector
	tracer  trace.Tracer
}

func defaultOptions() options {
	return options{
		logger: slog.Default().With("component", "app"),
		tracer: noop.NewTracerProvider().Tracer(metrics.DefaultTracerName),
	}
}

// Option configures an App.
type Option func(*options)

// WithLogger sets the logger for render failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics records render cycles on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

// WithTracer traces each render cycle as a "vlite.render" span.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}
