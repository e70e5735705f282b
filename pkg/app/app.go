package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/vlite/internal/errors"
	"github.com/vango-dev/vlite/pkg/host"
	"github.com/vango-dev/vlite/pkg/metrics"
	"github.com/vango-dev/vlite/pkg/render"
	"github.com/vango-dev/vlite/pkg/store"
	"github.com/vango-dev/vlite/pkg/vdom"
)

// View produces the display tree for a state.
type View[S any] func(state S) *vdom.VNode

// App is a running application: one store rendered into one host node.
type App[S, A any] struct {
	view     View[S]
	rootHost host.Node
	surface  host.Surface
	store    *store.Store[S, A]
	sub      store.Subscription

	logger *slog.Logger
	opts   options

	mu      sync.Mutex
	ctx     context.Context
	renders int
	nodes   int
	lastErr error
	closed  bool
}

// CreateApp wires view, store and surface together. It subscribes the render
// cycle on st and then renders once. The error of that first render is
// returned; the subscription stays in place so a later dispatch can recover.
func CreateApp[S, A any](view View[S], rootHost host.Node, surface host.Surface, st *store.Store[S, A], opts ...Option) (*App[S, A], error) {
	if view == nil {
		return nil, errors.New("E201")
	}
	if surface == nil || st == nil {
		return nil, errors.New("E202")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a := &App[S, A]{
		view:     view,
		rootHost: rootHost,
		surface:  surface,
		store:    st,
		logger:   o.logger,
		opts:     o,
	}

	a.sub = st.Subscribe(a.onDispatch)

	if err := a.renderApp(context.Background()); err != nil {
		return a, err
	}
	return a, nil
}

// onDispatch is the store observer. Errors cannot travel back through
// Dispatch, so they are logged and kept for Err.
func (a *App[S, A]) onDispatch() {
	if err := a.renderApp(a.renderContext()); err != nil {
		a.logger.Error("render failed", "error", err, "renders", a.Renders())
	}
}

// renderApp clears the root host node and materializes the current state.
// Surface errors are returned as raised.
func (a *App[S, A]) renderApp(ctx context.Context) (err error) {
	start := time.Now()
	_, span := metrics.StartSpan(ctx, a.opts.tracer, "vlite.render",
		attribute.Int("vlite.render.seq", a.Renders()+1),
	)

	r := render.NewRenderer(a.surface)
	defer func() {
		elapsed := time.Since(start)
		a.finish(r.Created(), err)
		span.SetAttributes(attribute.Int("vlite.render.nodes", r.Created()))
		metrics.EndSpan(span, err)
		a.opts.metrics.RecordRender(elapsed, r.Created(), err)
		a.logger.DebugContext(ctx, "render", "nodes", r.Created(), "duration", elapsed)
	}()

	a.surface.ClearChildren(a.rootHost)
	return r.Render(a.view(a.store.GetState()), a.rootHost)
}

func (a *App[S, A]) finish(nodes int, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.renders++
	a.nodes = nodes
	a.lastErr = err
}

// Store returns the application's store.
func (a *App[S, A]) Store() *store.Store[S, A] {
	return a.store
}

// Root returns the host node the application renders into.
func (a *App[S, A]) Root() host.Node {
	return a.rootHost
}

// Renders returns the number of render cycles run so far, including the
// initial one.
func (a *App[S, A]) Renders() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.renders
}

// Nodes returns the number of host nodes created by the last render cycle.
func (a *App[S, A]) Nodes() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nodes
}

// Err returns the error of the most recent render cycle, or nil if it
// succeeded.
func (a *App[S, A]) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Rerender runs a render cycle without dispatching.
func (a *App[S, A]) Rerender() error {
	return a.renderApp(a.renderContext())
}

// Bind makes ctx the parent of render cycles until release is called, so
// renders triggered by an event are traced under that event's span. Binds
// nest; release restores the previous context.
func (a *App[S, A]) Bind(ctx context.Context) (release func()) {
	a.mu.Lock()
	prev := a.ctx
	a.ctx = ctx
	a.mu.Unlock()
	return func() {
		a.mu.Lock()
		a.ctx = prev
		a.mu.Unlock()
	}
}

func (a *App[S, A]) renderContext() context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

// Close unsubscribes the render cycle from the store. The host tree is left
// as last rendered. Close is idempotent.
func (a *App[S, A]) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.mu.Unlock()
	a.sub.Unsubscribe()
}
