package memdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vlite/internal/errors"
	"github.com/vango-dev/vlite/pkg/host"
)

func mustElement(t *testing.T, d *Document, tag string) *Element {
	t.Helper()
	n, err := d.CreateElement(tag)
	require.NoError(t, err)
	return n.(*Element)
}

func TestNewDocument(t *testing.T) {
	d := New("")
	require.NotNil(t, d.Root())
	assert.Equal(t, "body", d.Root().Tag())
	assert.Equal(t, 1, d.Size())

	got, ok := d.ByID(d.Root().ID())
	assert.True(t, ok)
	assert.Same(t, d.Root(), got)
}

func TestCreateElementValidatesTag(t *testing.T) {
	d := New("main")

	for _, tag := range []string{"div", "my-widget", "H1", "svg2"} {
		_, err := d.CreateElement(tag)
		assert.NoError(t, err, tag)
	}

	for _, tag := range []string{"", "1div", "<div>", "di v", "#text"} {
		_, err := d.CreateElement(tag)
		require.Error(t, err, tag)
		assert.True(t, errors.Is(err, errors.New("E101")), tag)
	}

	assert.Equal(t, int64(4), d.Stats().Elements)
}

func TestTextNodeValue(t *testing.T) {
	d := New("")
	txt := d.CreateText().(*Element)
	assert.True(t, txt.IsText())
	assert.Equal(t, "", txt.Text())

	d.SetProperty(txt, NodeValue, "hello")
	assert.Equal(t, "hello", txt.Text())

	d.SetProperty(txt, NodeValue, 7)
	assert.Equal(t, "7", txt.Text())

	_, ok := txt.Property(NodeValue)
	assert.False(t, ok, "nodeValue on text nodes is content, not a property")
}

func TestAppendAndClear(t *testing.T) {
	d := New("")
	ul := mustElement(t, d, "ul")
	a := mustElement(t, d, "li")
	b := mustElement(t, d, "li")

	d.AppendChild(ul, a)
	d.AppendChild(ul, b)
	d.AppendChild(d.Root(), ul)

	require.Equal(t, 2, ul.ChildCount())
	assert.Same(t, a, ul.Children()[0])
	assert.Same(t, ul, a.Parent())

	d.AppendChild(d.Root(), a)
	assert.Equal(t, 1, ul.ChildCount(), "append moves an attached child")
	assert.Same(t, d.Root(), a.Parent())

	d.ClearChildren(d.Root())
	assert.Equal(t, 0, d.Root().ChildCount())
	assert.Nil(t, ul.Parent())
	_, ok := d.ByID(ul.ID())
	assert.False(t, ok, "cleared nodes leave the index")
	_, ok = d.ByID(b.ID())
	assert.False(t, ok, "cleared descendants leave the index")
	assert.Equal(t, 1, d.Size())
}

func TestDetachedNodesStayOutOfIndex(t *testing.T) {
	d := New("")

	// A subtree abandoned halfway, as when a tag fails to validate.
	for i := 0; i < 3; i++ {
		d.ClearChildren(d.Root())
		div := mustElement(t, d, "div")
		p := mustElement(t, d, "p")
		txt := d.CreateText()
		d.SetProperty(txt, NodeValue, "x")
		d.AppendChild(p, txt)
		d.AppendChild(div, p)
		_, err := d.CreateElement("bad tag")
		require.Error(t, err)

		_, ok := d.ByID(div.ID())
		assert.False(t, ok)
		_, ok = d.Lookup(p.HID())
		assert.False(t, ok)
	}
	assert.Equal(t, 0, d.Root().ChildCount())
	assert.Equal(t, 1, d.Size())

	// Attaching the subtree indexes all of it.
	div := mustElement(t, d, "div")
	p := mustElement(t, d, "p")
	d.AppendChild(div, p)
	assert.False(t, p.Connected())
	d.AppendChild(d.Root(), div)
	assert.True(t, p.Connected())
	assert.Equal(t, 3, d.Size())
	got, ok := d.ByID(p.ID())
	require.True(t, ok)
	assert.Same(t, p, got)

	// Moving it under a detached parent removes it again.
	other := mustElement(t, d, "section")
	d.AppendChild(other, div)
	assert.Equal(t, 1, d.Size())
	_, ok = d.ByID(p.ID())
	assert.False(t, ok)
}

func TestListenAndDispatch(t *testing.T) {
	d := New("")
	btn := mustElement(t, d, "button")

	var order []string
	d.Listen(btn, "click", func(e host.Event) {
		order = append(order, "first")
		assert.Same(t, btn, e.Target)
	})
	d.Listen(btn, "click", func(host.Event) { order = append(order, "second") })
	d.Listen(btn, "input", func(e host.Event) { order = append(order, "input:"+e.Value) })

	assert.True(t, btn.Click())
	assert.True(t, btn.Input("abc"))
	assert.False(t, btn.Dispatch(host.Event{Type: "keydown"}))

	assert.Equal(t, []string{"first", "second", "input:abc"}, order)
	assert.Equal(t, 2, btn.Listeners("click"))
	assert.Equal(t, []string{"click", "input"}, btn.Events())

	v, _ := btn.Property("value")
	assert.Equal(t, "abc", v)
}

func TestForeignNodePanics(t *testing.T) {
	d1, d2 := New(""), New("")
	assert.Panics(t, func() { d1.AppendChild(d1.Root(), d2.Root()) })
	assert.Panics(t, func() { d1.SetProperty("not a node", "a", 1) })
}

func TestQueries(t *testing.T) {
	d := New("")
	div := mustElement(t, d, "div")
	p := mustElement(t, d, "p")
	span := mustElement(t, d, "span")
	txt := d.CreateText()
	d.SetProperty(txt, NodeValue, "hi")
	d.SetProperty(span, "class", "x")

	d.AppendChild(span, txt)
	d.AppendChild(p, span)
	d.AppendChild(div, p)
	d.AppendChild(d.Root(), div)

	assert.Same(t, span, d.Root().Find(ByTag("span")))
	assert.Same(t, span, d.Root().Find(ByProperty("class", "x")))
	assert.Nil(t, d.Root().Find(ByTag("table")))
	assert.Len(t, d.Root().FindAll(ByText("hi")), 3)
	assert.Equal(t, "hi", d.Root().TextContent())

	got, ok := d.Lookup(span.HID())
	assert.True(t, ok)
	assert.Same(t, span, got)
	_, ok = d.Lookup("nope")
	assert.False(t, ok)
}

func TestByPropertyUncomparableValues(t *testing.T) {
	d := New("")
	ul := mustElement(t, d, "ul")
	d.SetProperty(ul, "items", []string{"a", "b"})
	d.SetProperty(ul, "class", "list")
	d.AppendChild(d.Root(), ul)

	assert.NotPanics(t, func() {
		assert.Same(t, ul, d.Root().Find(ByProperty("items", []string{"a", "b"})))
		assert.Nil(t, d.Root().Find(ByProperty("items", []string{"a"})))
		assert.Nil(t, d.Root().Find(ByProperty("items", "a")))
		assert.Nil(t, d.Root().Find(ByProperty("class", []string{"list"})))
	})
	assert.Same(t, ul, d.Root().Find(ByProperty("class", "list")))
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "Element", ElementNode.String())
	assert.Equal(t, "Text", TextNode.String())
	assert.Equal(t, "Unknown", NodeType(9).String())
}
