package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Transition computes the next state from the current state and an action.
// It must be pure and total.
type Transition[S, A any] func(state S, action A) S

// Observer is notified after every transition.
type Observer func()

// Store holds application state and notifies observers on every dispatch.
type Store[S, A any] struct {
	transition Transition[S, A]
	state      S
	observers  []*registration
	depth      int
	dispatches uint64

	logger *slog.Logger
	hooks  Hooks
}

type registration struct {
	fn     Observer
	active bool
}

// New creates a store with the given transition function and initial state.
// It panics if transition is nil.
func New[S, A any](transition Transition[S, A], initial S, opts ...Option) *Store[S, A] {
	if transition == nil {
		panic("store: nil transition")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[S, A]{
		transition: transition,
		state:      initial,
		logger:     cfg.logger,
		hooks:      cfg.hooks,
	}
}

// GetState returns the current state.
func (s *Store[S, A]) GetState() S {
	return s.state
}

// Dispatch applies the transition to the current state and action, stores
// the result, then calls every observer registered at that moment, in
// subscription order.
//
// Observers run on the caller's goroutine after the state is updated, so
// GetState inside an observer returns the new state. An observer may
// dispatch again; the nested dispatch runs to completion before the outer
// notification continues. A panic in the transition propagates to the caller
// and leaves the state unchanged.
func (s *Store[S, A]) Dispatch(action A) {
	start := time.Now()

	next := s.transition(s.state, action)
	s.state = next
	s.dispatches++

	s.depth++
	defer func() { s.depth-- }()

	observers := make([]*registration, len(s.observers))
	copy(observers, s.observers)

	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.logger.Debug("dispatch",
			"action", fmt.Sprintf("%T", action),
			"observers", len(observers),
			"depth", s.depth,
		)
	}

	for _, reg := range observers {
		if reg.active {
			reg.fn()
		}
	}

	if s.hooks.OnDispatch != nil {
		s.hooks.OnDispatch(s.depth, time.Since(start))
	}
}

// Subscribe appends an observer. The same function may be registered more
// than once and is then called once per registration. Registrations made
// during a notification are first called on the next dispatch.
func (s *Store[S, A]) Subscribe(observer Observer) Subscription {
	if observer == nil {
		return Subscription{}
	}
	reg := &registration{fn: observer, active: true}
	s.observers = append(s.observers, reg)
	return Subscription{cancel: func() { s.remove(reg) }}
}

// Observers returns the number of active registrations.
func (s *Store[S, A]) Observers() int {
	return len(s.observers)
}

// Dispatches returns the number of completed transitions.
func (s *Store[S, A]) Dispatches() uint64 {
	return s.dispatches
}

// Dispatching reports whether a notification is in progress.
func (s *Store[S, A]) Dispatching() bool {
	return s.depth > 0
}

func (s *Store[S, A]) remove(reg *registration) {
	if !reg.active {
		return
	}
	reg.active = false
	for i, r := range s.observers {
		if r == reg {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the registration. It is idempotent, and it takes
// effect immediately even during a notification in progress.
func (s Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}
