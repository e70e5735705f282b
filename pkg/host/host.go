// Package host defines the capability set vlite needs from a display surface.
//
// The materializer never touches a concrete display tree directly. It only
// creates nodes, assigns properties, registers event listeners, appends
// children, and clears children, all through a Surface. Property assignment
// and event registration are separate typed entry points, so binding a
// callable is never a reflective side effect of setting a value.
//
// memdom provides an in-memory Surface used by tests, the CLI and the live
// server. A browser implementation (syscall/js) fits the same interface.
package host

// Node is an opaque handle to a node owned by a Surface.
type Node any

// Event is delivered to listeners when the surface reports an interaction.
type Event struct {
	// Type is the event name without the "on" prefix, e.g. "click".
	Type string

	// Target is the node the event was dispatched on.
	Target Node

	// Value carries the current value for input-like events.
	Value string
}

// Handler receives events registered with Surface.Listen.
type Handler func(Event)

// Surface is the host display-surface capability set.
type Surface interface {
	// CreateElement creates an element node of the given type. Surfaces
	// return an error for types they cannot create.
	CreateElement(tag string) (Node, error)

	// CreateText creates an empty text node. Its content is assigned as the
	// "nodeValue" property.
	CreateText() Node

	// SetProperty assigns a named value onto a node.
	SetProperty(n Node, name string, value any)

	// Listen registers h for events of the given type on n.
	Listen(n Node, event string, h Handler)

	// AppendChild appends child as the last child of parent.
	AppendChild(parent, child Node)

	// ClearChildren removes all children of n.
	ClearChildren(n Node)
}

// AsHandler adapts the handler shapes vlite accepts in event attributes.
// It returns false for values that are not callables of a supported shape.
func AsHandler(v any) (Handler, bool) {
	switch h := v.(type) {
	case Handler:
		return h, h != nil
	case func(Event):
		return h, h != nil
	case func():
		if h == nil {
			return nil, false
		}
		return func(Event) { h() }, true
	case func(string):
		if h == nil {
			return nil, false
		}
		return func(e Event) { h(e.Value) }, true
	default:
		return nil, false
	}
}
