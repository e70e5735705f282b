package vdom

import (
	"fmt"
	"sort"
)

const (
	// TextKind is the reserved Kind of text nodes. Element kinds are host
	// element type names and never start with '#'.
	TextKind = "#text"

	// TextKey is the single attribute a text node carries: its payload.
	TextKey = "nodeValue"

	// ChildrenKey is reserved. The materializer never assigns it to a host
	// node, even though H never stores children there.
	ChildrenKey = "children"
)

// Attrs maps attribute names to values. Values are plain data or event
// handlers (funcs) for on-prefixed keys.
type Attrs map[string]any

// VNode describes one node of the intended display tree.
//
// A VNode is a value: nothing in this package mutates a node after it has
// been returned, and callers must not either. Trees are rebuilt from scratch
// on every render cycle.
type VNode struct {
	Kind    string   // TextKind or a host element type name
	Attrs   Attrs    // Attributes and event handlers
	Content []*VNode // Children in render order, empty for text nodes
}

// IsText reports whether the node is a text node.
func (v *VNode) IsText() bool {
	return v != nil && v.Kind == TextKind
}

// Text returns the payload of a text node, or "" for elements.
func (v *VNode) Text() string {
	if !v.IsText() {
		return ""
	}
	s, _ := v.Attrs[TextKey].(string)
	return s
}

// Attr returns the attribute stored under key.
func (v *VNode) Attr(key string) (any, bool) {
	if v == nil {
		return nil, false
	}
	val, ok := v.Attrs[key]
	return val, ok
}

// Keys returns the attribute names in sorted order.
func (v *VNode) Keys() []string {
	if v == nil {
		return nil
	}
	keys := make([]string, 0, len(v.Attrs))
	for k := range v.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns a compact debug form, e.g. div[2].
func (v *VNode) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.IsText() {
		return fmt.Sprintf("%q", v.Text())
	}
	return fmt.Sprintf("%s[%d]", v.Kind, len(v.Content))
}

// Attr is a single attribute, used by the element factories.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can produce a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
