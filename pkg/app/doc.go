// Package app binds a root view, a store and a host surface together.
//
// CreateApp subscribes a render cycle on the store and runs it once. Every
// dispatch afterwards clears the root host node and rebuilds the whole tree
// from the new state:
//
//	st := store.New(counter.Reduce, counter.State{})
//	doc := memdom.New("body")
//	a, err := app.CreateApp(counter.View(st.Dispatch), doc.Root(), doc, st)
//	if err != nil {
//		return err
//	}
//	defer a.Close()
//	st.Dispatch(counter.Inc)
//
// Dispatch metrics are recorded by the store itself; pass
// store.WithHooks(store.Hooks{OnDispatch: collector.RecordDispatch}) when
// creating it.
package app
