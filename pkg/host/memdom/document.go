package memdom

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/vango-dev/vlite/internal/errors"
	"github.com/vango-dev/vlite/pkg/host"
)

// validTag matches element names the document accepts.
var validTag = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// Stats counts surface operations since the document was created.
type Stats struct {
	Elements  int64 // CreateElement calls that succeeded
	Texts     int64 // CreateText calls
	Props     int64 // SetProperty calls
	Listeners int64 // Listen calls
	Appends   int64 // AppendChild calls
	Clears    int64 // ClearChildren calls
}

// Document is an in-memory host surface. It is not safe for concurrent use;
// callers serialize access the same way a browser's single UI thread does.
type Document struct {
	root   *Element
	nextID int
	nodes  map[int]*Element
	stats  Stats
}

var _ host.Surface = (*Document)(nil)

// New creates a document with an empty root element of the given tag
// ("body" if empty).
func New(rootTag string) *Document {
	if rootTag == "" {
		rootTag = "body"
	}
	d := &Document{nodes: make(map[int]*Element)}
	d.root = d.newNode(ElementNode, rootTag)
	d.nodes[d.root.id] = d.root
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// ByID returns the mounted node with the given id.
func (d *Document) ByID(id int) (*Element, bool) {
	el, ok := d.nodes[id]
	return el, ok
}

// Lookup parses a string id (as found in data-hid) and returns the node.
func (d *Document) Lookup(id string) (*Element, bool) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, false
	}
	return d.ByID(n)
}

// Size returns the number of nodes connected to the root, the root included.
func (d *Document) Size() int {
	return len(d.nodes)
}

// Stats returns operation counters.
func (d *Document) Stats() Stats {
	return d.stats
}

func (d *Document) newNode(typ NodeType, tag string) *Element {
	d.nextID++
	el := &Element{
		id:    d.nextID,
		typ:   typ,
		tag:   tag,
		doc:   d,
		props: make(map[string]any),
	}
	return el
}

// CreateElement implements host.Surface.
func (d *Document) CreateElement(tag string) (host.Node, error) {
	if !validTag.MatchString(tag) {
		return nil, errors.New("E101").WithDetailf("cannot create element %q", tag)
	}
	d.stats.Elements++
	return d.newNode(ElementNode, tag), nil
}

// CreateText implements host.Surface.
func (d *Document) CreateText() host.Node {
	d.stats.Texts++
	return d.newNode(TextNode, "")
}

// SetProperty implements host.Surface. On text nodes, "nodeValue" sets the
// text content.
func (d *Document) SetProperty(n host.Node, name string, value any) {
	el := d.own(n)
	d.stats.Props++
	if el.typ == TextNode && name == NodeValue {
		if s, ok := value.(string); ok {
			el.text = s
		} else {
			el.text = fmt.Sprint(value)
		}
		return
	}
	el.props[name] = value
}

// Listen implements host.Surface.
func (d *Document) Listen(n host.Node, event string, h host.Handler) {
	el := d.own(n)
	d.stats.Listeners++
	if el.listeners == nil {
		el.listeners = make(map[string][]host.Handler)
	}
	el.listeners[event] = append(el.listeners[event], h)
}

// AppendChild implements host.Surface. A child that already has a parent is
// moved. Nodes enter the id index when their subtree becomes connected to
// the root, and leave it when moved under a detached parent.
func (d *Document) AppendChild(parent, child host.Node) {
	p, c := d.own(parent), d.own(child)
	d.stats.Appends++
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = p
	p.children = append(p.children, c)
	if p.Connected() {
		d.index(c)
	} else {
		d.forget(c)
	}
}

// ClearChildren implements host.Surface. Removed subtrees are dropped from
// the id index, so their ids stop resolving.
func (d *Document) ClearChildren(n host.Node) {
	el := d.own(n)
	d.stats.Clears++
	for _, c := range el.children {
		c.parent = nil
		d.forget(c)
	}
	el.children = nil
}

func (d *Document) index(el *Element) {
	d.nodes[el.id] = el
	for _, c := range el.children {
		d.index(c)
	}
}

func (d *Document) forget(el *Element) {
	delete(d.nodes, el.id)
	for _, c := range el.children {
		d.forget(c)
	}
}

// own asserts that n is a node of this document.
func (d *Document) own(n host.Node) *Element {
	el, ok := n.(*Element)
	if !ok || el == nil || el.doc != d {
		panic(errors.New("E102").WithDetailf("node %T", n))
	}
	return el
}
