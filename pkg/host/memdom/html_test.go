package memdom

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/vlite/pkg/host"
)

func buildCard(t *testing.T, d *Document) *Element {
	t.Helper()
	div := mustElement(t, d, "div")
	d.SetProperty(div, "className", "card")
	d.SetProperty(div, "data-n", 3)
	d.SetProperty(div, "onclick", "not a function")
	d.SetProperty(div, "render", func() {})

	btn := mustElement(t, d, "button")
	d.SetProperty(btn, "disabled", false)
	d.Listen(btn, "click", func(host.Event) {})
	txt := d.CreateText()
	d.SetProperty(txt, NodeValue, `<b> & "q"`)
	d.AppendChild(btn, txt)

	in := mustElement(t, d, "input")
	d.SetProperty(in, "checked", true)
	d.SetProperty(in, "title", "a\nb")

	d.AppendChild(div, btn)
	d.AppendChild(div, in)
	d.AppendChild(d.Root(), div)
	return div
}

func TestHTML(t *testing.T) {
	d := New("")
	div := buildCard(t, d)

	got := div.HTML(HTMLOptions{})
	want := `<div class="card" data-n="3" onclick="not a function">` +
		`<button>&lt;b&gt; &amp; &quot;q&quot;</button>` +
		`<input checked title="a&#10;b">` +
		`</div>`
	assert.Equal(t, want, got)
}

func TestHTMLVoidElements(t *testing.T) {
	d := New("")
	p := mustElement(t, d, "p")
	for _, tag := range []string{"br", "hr", "wbr", "img"} {
		d.AppendChild(p, mustElement(t, d, tag))
	}
	d.AppendChild(p, mustElement(t, d, "span"))

	assert.Equal(t, `<p><br><hr><wbr><img><span></span></p>`, p.HTML(HTMLOptions{}))
}

func TestHTMLMarkers(t *testing.T) {
	d := New("")
	div := buildCard(t, d)
	btn := div.Find(ByTag("button"))

	got := div.HTML(HTMLOptions{Markers: true})
	assert.Contains(t, got, `<button data-hid="`+btn.HID()+`" data-on-click="true">`)
	assert.NotContains(t, got, `<div class="card" data-hid`)
}

func TestInnerHTMLPretty(t *testing.T) {
	d := New("")
	ul := mustElement(t, d, "ul")
	li := mustElement(t, d, "li")
	txt := d.CreateText()
	d.SetProperty(txt, NodeValue, "one")
	d.AppendChild(li, txt)
	d.AppendChild(ul, li)
	d.AppendChild(d.Root(), ul)

	got := d.Root().InnerHTML(HTMLOptions{Pretty: true})
	want := "<ul>\n  <li>\n    one\n  </li>\n</ul>\n"
	assert.Equal(t, want, got)
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.n++
	if f.n > 1 {
		return 0, errors.New("write failed")
	}
	return len(p), nil
}

func TestWriteHTMLError(t *testing.T) {
	d := New("")
	buildCard(t, d)

	err := WriteHTML(&failWriter{}, d.Root(), HTMLOptions{})
	assert.EqualError(t, err, "write failed")

	var buf bytes.Buffer
	assert.NoError(t, WriteHTML(&buf, d.Root(), HTMLOptions{}))
	assert.Equal(t, d.Root().HTML(HTMLOptions{}), buf.String())
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;", escapeHTML("<script>alert('x')</script>"))
	assert.Equal(t, "a&#9;b&#13;&amp;", escapeAttr("a\tb\r&"))
	assert.Equal(t, "héllo", escapeHTML("héllo"))
}
