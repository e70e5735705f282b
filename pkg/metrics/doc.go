// Package metrics exposes Prometheus collectors for vlite render cycles,
// store dispatches, and live sessions.
//
// A Collector is created per registry, so tests and embedders can use an
// isolated prometheus.Registry instead of the global default:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(metrics.WithRegistry(reg), metrics.WithNamespace("myapp"))
//	a, err := app.CreateApp(view, root, doc, st, app.WithMetrics(m))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// Metrics collected (namespace "vlite" by default):
//   - renders_total: render cycles by status
//   - render_duration_seconds: render cycle duration
//   - host_nodes_created_total: host nodes created by render cycles
//   - dispatches_total: store dispatches by depth class (top, nested)
//   - dispatch_duration_seconds: transition plus notification duration
//   - active_sessions: live server sessions
//   - session_events_total: client events by outcome
//   - websocket_errors_total: websocket errors by type
package metrics
