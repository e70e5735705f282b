package vtest

import (
	"testing"

	"github.com/vango-dev/vlite/pkg/app"
	"github.com/vango-dev/vlite/pkg/host/memdom"
	"github.com/vango-dev/vlite/pkg/store"
)

// Mounted is an app rendered into an in-memory document.
type Mounted[S, A any] struct {
	t   testing.TB
	Doc *memdom.Document
	App *app.App[S, A]
}

// Mount creates an app for view and st on a new document. The app is closed
// when the test ends.
func Mount[S, A any](t testing.TB, view app.View[S], st *store.Store[S, A], opts ...app.Option) *Mounted[S, A] {
	t.Helper()
	doc := memdom.New("body")
	a, err := app.CreateApp(view, doc.Root(), doc, st, opts...)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	t.Cleanup(a.Close)
	return &Mounted[S, A]{t: t, Doc: doc, App: a}
}

// State returns the store's current state.
func (m *Mounted[S, A]) State() S {
	return m.App.Store().GetState()
}

// Dispatch dispatches action and fails the test if the resulting render failed.
func (m *Mounted[S, A]) Dispatch(action A) {
	m.t.Helper()
	m.App.Store().Dispatch(action)
	m.checkRender()
}

// Find returns the first element matching pred, failing the test if none does.
func (m *Mounted[S, A]) Find(pred func(*memdom.Element) bool) *memdom.Element {
	m.t.Helper()
	el := m.Doc.Root().Find(pred)
	if el == nil {
		m.t.Fatalf("no element matches in:\n%s", truncate(m.HTML(), 500))
	}
	return el
}

// Click clicks the first element matching pred.
func (m *Mounted[S, A]) Click(pred func(*memdom.Element) bool) {
	m.t.Helper()
	if !m.Find(pred).Click() {
		m.t.Fatalf("element has no click listener")
	}
	m.checkRender()
}

// Input sets the value of the first element matching pred and fires input.
func (m *Mounted[S, A]) Input(pred func(*memdom.Element) bool, value string) {
	m.t.Helper()
	m.Find(pred).Input(value)
	m.checkRender()
}

// HTML returns the markup inside the root.
func (m *Mounted[S, A]) HTML() string {
	return m.Doc.Root().InnerHTML(memdom.HTMLOptions{})
}

// Text returns the concatenated text of the root.
func (m *Mounted[S, A]) Text() string {
	return m.Doc.Root().TextContent()
}

// ExpectText asserts the root's text content.
func (m *Mounted[S, A]) ExpectText(expected string) {
	m.t.Helper()
	if got := m.Text(); got != expected {
		m.t.Errorf("expected text %q, got %q", expected, got)
	}
}

// ExpectHTML asserts the markup inside the root.
func (m *Mounted[S, A]) ExpectHTML(expected string) {
	m.t.Helper()
	if got := m.HTML(); got != expected {
		m.t.Errorf("expected HTML:\n%s\ngot:\n%s", expected, got)
	}
}

func (m *Mounted[S, A]) checkRender() {
	m.t.Helper()
	if err := m.App.Err(); err != nil {
		m.t.Fatalf("render failed: %v", err)
	}
}
