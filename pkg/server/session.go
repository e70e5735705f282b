package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/vango-dev/vlite/internal/errors"
	"github.com/vango-dev/vlite/pkg/host"
	"github.com/vango-dev/vlite/pkg/host/memdom"
)

// Session is an app mounted for one client.
type Session interface {
	// Err returns the error of the most recent render, if any.
	Err() error
	// Bind parents the renders that follow on ctx until release is called.
	Bind(ctx context.Context) (release func())
	// Close detaches the app from its store.
	Close()
}

// AppFactory mounts a fresh app into root. It is called once per page load
// and once per live connection.
type AppFactory func(doc *memdom.Document, root *memdom.Element) (Session, error)

// Event outcomes recorded in metrics.
const (
	outcomeHandled   = "handled"
	outcomeIgnored   = "ignored"
	outcomeUnknown   = "unknown_target"
	outcomeMalformed = "malformed"
	outcomeFailed    = "render_failed"
)

// liveSession pairs a document with the app rendering into it. mu
// serializes events, since the document is single-threaded.
type liveSession struct {
	id  string
	doc *memdom.Document
	app Session
	mu  sync.Mutex
}

func newLiveSession(factory AppFactory) (*liveSession, error) {
	doc := memdom.New("body")
	a, err := factory(doc, doc.Root())
	if err != nil {
		return nil, err
	}
	return &liveSession{id: newSessionID(), doc: doc, app: a}, nil
}

// html returns the root's markup with event markers for the client runtime.
func (s *liveSession) html() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Root().InnerHTML(memdom.HTMLOptions{Markers: true})
}

// handle applies one client event and returns its outcome. Renders the
// event triggers run under ctx.
func (s *liveSession) handle(ctx context.Context, msg ClientMessage) (string, error) {
	if msg.Type != TypeEvent || msg.Event == "" {
		return outcomeMalformed, errors.New("E402").
			WithDetailf("expected an event frame, got type %q event %q", msg.Type, msg.Event)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.doc.Lookup(msg.HID)
	if !ok {
		return outcomeUnknown, errors.New("E401").WithDetailf("no node with hid %q", msg.HID)
	}

	release := s.app.Bind(ctx)
	defer release()

	var ran bool
	if msg.Event == "input" {
		ran = el.Input(msg.Value)
	} else {
		ran = el.Dispatch(host.Event{Type: msg.Event, Value: msg.Value})
	}
	if !ran {
		return outcomeIgnored, nil
	}
	if err := s.app.Err(); err != nil {
		return outcomeFailed, err
	}
	return outcomeHandled, nil
}

func (s *liveSession) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app.Close()
}

func newSessionID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("server: crypto/rand failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}
