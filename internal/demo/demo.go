// Package demo contains the sample applications served and rendered by the
// vlite CLI.
package demo

import (
	"context"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vlite/internal/errors"
	"github.com/vango-dev/vlite/pkg/app"
	"github.com/vango-dev/vlite/pkg/host/memdom"
	"github.com/vango-dev/vlite/pkg/metrics"
	"github.com/vango-dev/vlite/pkg/store"
)

// App is a mounted demo application.
type App interface {
	Err() error
	Bind(ctx context.Context) (release func())
	Close()
}

// Setup carries the ambient dependencies a demo is mounted with.
type Setup struct {
	Logger  *slog.Logger
	Metrics *metrics.Collector
	Tracer  trace.Tracer
}

func (s Setup) storeOptions() []store.Option {
	opts := []store.Option{store.WithLogger(s.Logger)}
	if s.Metrics != nil {
		opts = append(opts, store.WithHooks(store.Hooks{OnDispatch: s.Metrics.RecordDispatch}))
	}
	return opts
}

func (s Setup) appOptions() []app.Option {
	return []app.Option{
		app.WithLogger(s.Logger),
		app.WithMetrics(s.Metrics),
		app.WithTracer(s.Tracer),
	}
}

// mount converts CreateApp's result, closing the app if its first render
// failed.
func mount[S, A any](a *app.App[S, A], err error) (App, error) {
	if err != nil {
		if a != nil {
			a.Close()
		}
		return nil, err
	}
	return a, nil
}

// Factory mounts a fresh instance of a demo into root.
type Factory func(doc *memdom.Document, root *memdom.Element, setup Setup) (App, error)

var factories = map[string]Factory{
	"counter": MountCounter,
	"todo":    MountTodo,
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, errors.New("E601").
			WithDetailf("no demo named %q", name).
			WithSuggestion("Available demos: " + joinNames())
	}
	return f, nil
}

// Names returns the registered demo names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func joinNames() string {
	out := ""
	for i, n := range Names() {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
