package memdom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/vlite/pkg/vdom"
)

// HTMLOptions configures HTML serialization.
type HTMLOptions struct {
	// Pretty enables indented output. Development only; it changes
	// whitespace inside inline content.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// Markers adds data-hid and data-on-<event> attributes to nodes with
	// listeners so a thin client can route events back by node id.
	Markers bool
}

// booleanAttrs render as a bare name when true and are omitted when false.
var booleanAttrs = map[string]bool{
	"checked": true, "disabled": true, "hidden": true, "readonly": true,
	"required": true, "selected": true, "autofocus": true, "multiple": true,
}

// HTML serializes the element and its subtree.
func (e *Element) HTML(opts HTMLOptions) string {
	var buf bytes.Buffer
	_ = WriteHTML(&buf, e, opts)
	return buf.String()
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML(opts HTMLOptions) string {
	var buf bytes.Buffer
	w := newWriter(&buf, opts)
	for _, c := range e.children {
		w.node(c, 0)
	}
	return buf.String()
}

// WriteHTML streams the subtree rooted at e to out.
func WriteHTML(out io.Writer, e *Element, opts HTMLOptions) error {
	w := newWriter(out, opts)
	w.node(e, 0)
	return w.err
}

// htmlWriter keeps the first write error and turns later writes into no-ops.
type htmlWriter struct {
	out  io.Writer
	opts HTMLOptions
	err  error
}

func newWriter(out io.Writer, opts HTMLOptions) *htmlWriter {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	return &htmlWriter{out: out, opts: opts}
}

func (w *htmlWriter) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

func (w *htmlWriter) indent(depth int) {
	if w.opts.Pretty && depth > 0 {
		w.write(strings.Repeat(w.opts.Indent, depth))
	}
}

func (w *htmlWriter) newline() {
	if w.opts.Pretty {
		w.write("\n")
	}
}

func (w *htmlWriter) node(e *Element, depth int) {
	if e.typ == TextNode {
		w.indent(depth)
		w.write(escapeHTML(e.text))
		w.newline()
		return
	}

	w.indent(depth)
	w.write("<" + e.tag)
	w.attributes(e)
	w.write(">")

	if vdom.IsVoidElement(e.tag) {
		w.newline()
		return
	}

	if len(e.children) > 0 {
		w.newline()
		for _, c := range e.children {
			w.node(c, depth+1)
		}
		w.indent(depth)
	}
	w.write("</" + e.tag + ">")
	w.newline()
}

func (w *htmlWriter) attributes(e *Element) {
	for _, key := range e.PropertyNames() {
		name := key
		switch key {
		case "className":
			name = "class"
		case "htmlFor":
			name = "for"
		case NodeValue:
			continue
		}

		value := e.props[key]
		if booleanAttrs[name] {
			if b, ok := value.(bool); ok {
				if b {
					w.write(" " + name)
				}
				continue
			}
		}

		s, ok := attrToString(value)
		if !ok {
			continue
		}
		w.write(fmt.Sprintf(` %s="%s"`, name, escapeAttr(s)))
	}

	if w.opts.Markers && len(e.listeners) > 0 {
		w.write(fmt.Sprintf(` data-hid="%d"`, e.id))
		for _, ev := range e.Events() {
			w.write(fmt.Sprintf(` data-on-%s="true"`, ev))
		}
	}
}

// attrToString converts a scalar property to its attribute form. Functions,
// maps and other non-scalar values have no HTML form and are skipped.
func attrToString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), true
	case float32, float64:
		return fmt.Sprintf("%g", v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
