package vdom

import (
	"fmt"
	"reflect"
)

// H builds a VNode from a kind, attributes and content.
//
// Content is flattened one level: a slice argument contributes its items in
// order, interleaved with the other arguments. Each item is then normalized:
// a *VNode is kept as is, a Component is rendered, nil is dropped, and any
// other value becomes a text node holding fmt.Sprint(value).
//
// attrs is copied, so later changes to the caller's map do not leak into the
// node. A nil attrs is stored as an empty map.
func H(kind string, attrs Attrs, content ...any) *VNode {
	node := &VNode{
		Kind:    kind,
		Attrs:   make(Attrs, len(attrs)),
		Content: make([]*VNode, 0, len(content)),
	}
	for k, v := range attrs {
		node.Attrs[k] = v
	}

	for _, item := range flatten(content) {
		if child := normalize(item); child != nil {
			node.Content = append(node.Content, child)
		}
	}
	return node
}

// Text creates a text node.
func Text(payload string) *VNode {
	return &VNode{
		Kind:  TextKind,
		Attrs: Attrs{TextKey: payload},
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// flatten unwraps slice arguments exactly one level deep.
func flatten(content []any) []any {
	out := make([]any, 0, len(content))
	for _, item := range content {
		switch v := item.(type) {
		case nil, string, *VNode:
			out = append(out, v)
		case []*VNode:
			for _, c := range v {
				out = append(out, c)
			}
		case []any:
			out = append(out, v...)
		default:
			rv := reflect.ValueOf(item)
			if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
				for i := 0; i < rv.Len(); i++ {
					out = append(out, rv.Index(i).Interface())
				}
				continue
			}
			out = append(out, item)
		}
	}
	return out
}

// normalize turns one flattened content item into a node.
func normalize(item any) *VNode {
	switch v := item.(type) {
	case nil:
		return nil
	case *VNode:
		return v
	case Component:
		return v.Render()
	case string:
		return Text(v)
	default:
		return Text(fmt.Sprint(v))
	}
}
