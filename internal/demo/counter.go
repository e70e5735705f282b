package demo

import (
	"github.com/vango-dev/vlite/pkg/app"
	"github.com/vango-dev/vlite/pkg/host/memdom"
	"github.com/vango-dev/vlite/pkg/store"
	. "github.com/vango-dev/vlite/pkg/vdom"
)

// CounterState is the counter's state.
type CounterState struct {
	Count int
}

// CounterAction is a counter action.
type CounterAction string

const (
	Inc   CounterAction = "INC"
	Dec   CounterAction = "DEC"
	Reset CounterAction = "RESET"
)

// ReduceCounter is the counter transition. Unknown actions leave the state
// unchanged.
func ReduceCounter(s CounterState, a CounterAction) CounterState {
	switch a {
	case Inc:
		return CounterState{Count: s.Count + 1}
	case Dec:
		return CounterState{Count: s.Count - 1}
	case Reset:
		return CounterState{}
	}
	return s
}

// CounterView renders the counter, binding its buttons to dispatch.
func CounterView(dispatch func(CounterAction)) func(CounterState) *VNode {
	return func(s CounterState) *VNode {
		return Div(Class("counter"),
			H1("Counter"),
			P(Class("count"), Textf("Count: %d", s.Count)),
			Button(Class("dec"), OnClick(func() { dispatch(Dec) }), "-"),
			Button(Class("inc"), OnClick(func() { dispatch(Inc) }), "+"),
			Button(Class("reset"), Disabled(s.Count == 0), OnClick(func() { dispatch(Reset) }), "Reset"),
		)
	}
}

// MountCounter mounts a counter starting at zero.
func MountCounter(doc *memdom.Document, root *memdom.Element, setup Setup) (App, error) {
	st := store.New(ReduceCounter, CounterState{}, setup.storeOptions()...)
	a, err := app.CreateApp(CounterView(st.Dispatch), root, doc, st, setup.appOptions()...)
	return mount(a, err)
}
