// Package vdom provides the virtual node model for vlite.
//
// A VNode is an immutable description of one node of the display tree:
// a Kind (a host element type name, or TextKind for text), an Attrs map,
// and ordered Content. Trees are plain data; they own no host resources and
// are rebuilt from scratch on every render cycle. There is no diffing.
//
// # Building Nodes
//
// H is the core constructor:
//
//	H("ul", Attrs{"class": "items"},
//	    H("li", nil, "first"),
//	    items, // []*VNode, spliced in place
//	    42,    // becomes a text node "42"
//	)
//
// Content is flattened one level and every non-node item becomes a text
// node holding its fmt.Sprint form.
//
// # Element API
//
// Element factories accept attributes and content in any order:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    P(Textf("%d items", n)),
//	    Button(OnClick(handler), "Add"),
//	)
//
// Event handlers are attributes whose key starts with "on".
package vdom
