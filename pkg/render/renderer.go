package render

import (
	"github.com/vango-dev/vlite/pkg/host"
	"github.com/vango-dev/vlite/pkg/vdom"
)

// Renderer materializes VNode trees onto a host surface.
type Renderer struct {
	surface host.Surface
	created int
}

// NewRenderer creates a Renderer for the given surface.
func NewRenderer(surface host.Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Render builds node's subtree on the surface and appends it to parent.
// A nil node renders nothing.
func (r *Renderer) Render(node *vdom.VNode, parent host.Node) error {
	if node == nil {
		return nil
	}

	var el host.Node
	if node.Kind == vdom.TextKind {
		el = r.surface.CreateText()
	} else {
		var err error
		el, err = r.surface.CreateElement(node.Kind)
		if err != nil {
			return err
		}
	}
	r.created++

	r.applyAttributes(el, node)

	for _, child := range node.Content {
		if err := r.Render(child, el); err != nil {
			return err
		}
	}

	r.surface.AppendChild(parent, el)
	return nil
}

// applyAttributes assigns properties and registers event handlers.
func (r *Renderer) applyAttributes(el host.Node, node *vdom.VNode) {
	for _, key := range node.Keys() {
		if key == vdom.ChildrenKey {
			continue
		}
		value := node.Attrs[key]
		if vdom.IsEventKey(key) {
			if h, ok := host.AsHandler(value); ok {
				r.surface.Listen(el, vdom.EventName(key), h)
				continue
			}
		}
		r.surface.SetProperty(el, key, value)
	}
}

// Created returns the number of host nodes this renderer has created.
func (r *Renderer) Created() int {
	return r.created
}

// Render materializes node onto surface under parent with a one-off Renderer.
func Render(surface host.Surface, node *vdom.VNode, parent host.Node) error {
	return NewRenderer(surface).Render(node, parent)
}
