package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the Prometheus collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "vlite").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "vlite",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the vlite collectors. A nil *Collector is valid and
// records nothing.
type Collector struct {
	rendersTotal     *prometheus.CounterVec
	renderDuration   prometheus.Histogram
	nodesCreated     prometheus.Counter
	dispatchesTotal  *prometheus.CounterVec
	dispatchDuration prometheus.Histogram
	activeSessions   prometheus.Gauge
	sessionEvents    *prometheus.CounterVec
	wsErrors         *prometheus.CounterVec
}

// New registers the collectors. It panics if they are already registered on
// the chosen registry, like promauto.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of full render cycles",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Duration of a clear-and-rebuild render cycle in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		nodesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "host_nodes_created_total",
			Help:        "Total number of host nodes created by render cycles",
			ConstLabels: config.ConstLabels,
		}),

		dispatchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatches_total",
			Help:        "Total number of store dispatches",
			ConstLabels: config.ConstLabels,
		}, []string{"depth"}),

		dispatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatch_duration_seconds",
			Help:        "Duration of a dispatch including observer notification in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of live websocket sessions",
			ConstLabels: config.ConstLabels,
		}),

		sessionEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "session_events_total",
			Help:        "Total client events received by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// RecordRender records one render cycle.
func (m *Collector) RecordRender(d time.Duration, nodes int, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.rendersTotal.WithLabelValues(status).Inc()
	m.renderDuration.Observe(d.Seconds())
	m.nodesCreated.Add(float64(nodes))
}

// RecordDispatch records one dispatch. It matches store.Hooks.OnDispatch.
func (m *Collector) RecordDispatch(depth int, d time.Duration) {
	if m == nil {
		return
	}
	label := "top"
	if depth > 1 {
		label = "nested"
	}
	m.dispatchesTotal.WithLabelValues(label).Inc()
	m.dispatchDuration.Observe(d.Seconds())
}

// SessionOpened records a new live session.
func (m *Collector) SessionOpened() {
	if m != nil {
		m.activeSessions.Inc()
	}
}

// SessionClosed records the end of a live session.
func (m *Collector) SessionClosed() {
	if m != nil {
		m.activeSessions.Dec()
	}
}

// RecordEvent records a client event outcome ("handled", "unknown_target",
// "malformed", "ignored").
func (m *Collector) RecordEvent(outcome string) {
	if m != nil {
		m.sessionEvents.WithLabelValues(outcome).Inc()
	}
}

// RecordWebSocketError records a WebSocket error.
func (m *Collector) RecordWebSocketError(errorType string) {
	if m != nil {
		m.wsErrors.WithLabelValues(errorType).Inc()
	}
}
