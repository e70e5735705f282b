// Package vtest provides testing helpers for vlite views and apps.
//
// Views are rendered onto an in-memory document (memdom), so assertions run
// against the same host tree a live session would serve.
//
// # Render Assertions
//
//	vtest.ExpectContains(t, TodoItem(item), "Buy milk")
//	vtest.ExpectElement(t, TodoItem(item), "input")
//	vtest.ExpectAttribute(t, TodoItem(item), "class", "done")
//
// # Mounting an App
//
// Mount wires a view and a store through app.CreateApp and fails the test on
// any render error:
//
//	m := vtest.Mount(t, counter.View(st.Dispatch), st)
//	m.Click(memdom.ByText("+"))
//	m.ExpectText("Count: 1+-")
//
// Element lookups are repeated on every call because each dispatch rebuilds
// the whole host tree.
package vtest
