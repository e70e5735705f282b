// Package store provides a centralized state container.
//
// A Store owns one state value of application-defined type S. The state only
// changes through Dispatch, which applies the pure transition function
// supplied at construction and replaces the state with the result. After
// every transition the store calls each registered observer, synchronously
// and in subscription order.
//
// Usage:
//
//	type Counter struct{ Count int }
//
//	st := store.New(func(s Counter, a string) Counter {
//	    if a == "INC" {
//	        return Counter{Count: s.Count + 1}
//	    }
//	    return s
//	}, Counter{})
//
//	st.Subscribe(func() { fmt.Println(st.GetState().Count) })
//	st.Dispatch("INC") // prints 1
//
// The store does no locking. It assumes a single logical thread of control,
// the way a UI event loop drives it; callers that dispatch from several
// goroutines must serialize those calls themselves.
package store
