package memdom

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/vlite/pkg/host"
)

// NodeValue is the property that holds a text node's content.
const NodeValue = "nodeValue"

// NodeType distinguishes elements from text nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Element is a node of a Document.
type Element struct {
	id        int
	typ       NodeType
	tag       string
	text      string
	props     map[string]any
	listeners map[string][]host.Handler
	children  []*Element
	parent    *Element
	doc       *Document
}

// ID returns the node's document-unique id.
func (e *Element) ID() int { return e.id }

// HID returns the id as used in data-hid attributes.
func (e *Element) HID() string { return strconv.Itoa(e.id) }

// Type returns the node type.
func (e *Element) Type() NodeType { return e.typ }

// Tag returns the element's tag name ("" for text nodes).
func (e *Element) Tag() string { return e.tag }

// IsText reports whether e is a text node.
func (e *Element) IsText() bool { return e.typ == TextNode }

// Text returns a text node's content.
func (e *Element) Text() string { return e.text }

// Parent returns the parent node, or nil when detached.
func (e *Element) Parent() *Element { return e.parent }

// Connected reports whether the element is the document root or one of its
// descendants.
func (e *Element) Connected() bool {
	for n := e; n != nil; n = n.parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return len(e.children) }

// Property returns a property previously set on the node.
func (e *Element) Property(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

// PropertyNames returns the property names in sorted order.
func (e *Element) PropertyNames() []string {
	names := make([]string, 0, len(e.props))
	for k := range e.props {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Listeners returns the number of listeners registered for event.
func (e *Element) Listeners(event string) int {
	return len(e.listeners[event])
}

// Events returns the event types with listeners, sorted.
func (e *Element) Events() []string {
	events := make([]string, 0, len(e.listeners))
	for ev := range e.listeners {
		events = append(events, ev)
	}
	sort.Strings(events)
	return events
}

// Dispatch delivers ev to the node's listeners for ev.Type, in registration
// order. Target defaults to the node. It reports whether any listener ran.
// Listeners may rebuild the document; the node stays valid as a value.
func (e *Element) Dispatch(ev host.Event) bool {
	hs := e.listeners[ev.Type]
	if len(hs) == 0 {
		return false
	}
	if ev.Target == nil {
		ev.Target = e
	}
	hs = append([]host.Handler(nil), hs...)
	for _, h := range hs {
		h(ev)
	}
	return true
}

// Click dispatches a click event.
func (e *Element) Click() bool {
	return e.Dispatch(host.Event{Type: "click"})
}

// Input sets the value property and dispatches an input event.
func (e *Element) Input(value string) bool {
	e.props["value"] = value
	return e.Dispatch(host.Event{Type: "input", Value: value})
}

// TextContent concatenates the text of all descendant text nodes.
func (e *Element) TextContent() string {
	if e.typ == TextNode {
		return e.text
	}
	var b strings.Builder
	e.appendText(&b)
	return b.String()
}

func (e *Element) appendText(b *strings.Builder) {
	for _, c := range e.children {
		if c.typ == TextNode {
			b.WriteString(c.text)
			continue
		}
		c.appendText(b)
	}
}

// Find returns the first descendant (depth-first, document order) matching
// pred, or nil.
func (e *Element) Find(pred func(*Element) bool) *Element {
	for _, c := range e.children {
		if pred(c) {
			return c
		}
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant matching pred, in document order.
func (e *Element) FindAll(pred func(*Element) bool) []*Element {
	var out []*Element
	for _, c := range e.children {
		if pred(c) {
			out = append(out, c)
		}
		out = append(out, c.FindAll(pred)...)
	}
	return out
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*Element) bool {
	return func(e *Element) bool { return e.typ == ElementNode && e.tag == tag }
}

// ByProperty matches elements whose property equals value. Values of
// uncomparable types such as slices and maps are compared deeply.
func ByProperty(name string, value any) func(*Element) bool {
	return func(e *Element) bool {
		v, ok := e.props[name]
		if !ok {
			return false
		}
		if isComparable(v) && isComparable(value) {
			return v == value
		}
		return reflect.DeepEqual(v, value)
	}
}

func isComparable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}

// ByText matches elements whose text content equals text.
func ByText(text string) func(*Element) bool {
	return func(e *Element) bool { return e.typ == ElementNode && e.TextContent() == text }
}

func (e *Element) removeChild(c *Element) {
	for i, x := range e.children {
		if x == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}
