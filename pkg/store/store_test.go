package store

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct{ Count int }

type action struct{ Type string }

func counterTransition(s counter, a action) counter {
	switch a.Type {
	case "INC":
		return counter{Count: s.Count + 1}
	case "DEC":
		return counter{Count: s.Count - 1}
	default:
		return s
	}
}

func TestNewAndGetState(t *testing.T) {
	st := New(counterTransition, counter{Count: 5})
	assert.Equal(t, counter{Count: 5}, st.GetState())
	assert.Equal(t, 0, st.Observers())
	assert.False(t, st.Dispatching())
}

func TestNewNilTransitionPanics(t *testing.T) {
	assert.Panics(t, func() { New[counter, action](nil, counter{}) })
}

func TestDispatchDeterministic(t *testing.T) {
	a := New(counterTransition, counter{Count: 2})
	b := New(counterTransition, counter{Count: 2})

	for _, act := range []action{{"INC"}, {"INC"}, {"DEC"}, {"NOOP"}} {
		a.Dispatch(act)
		b.Dispatch(act)
		assert.Equal(t, a.GetState(), b.GetState())
	}
	assert.Equal(t, counter{Count: 3}, a.GetState())
	assert.Equal(t, uint64(4), a.Dispatches())
}

func TestObserversCalledInOrderOnce(t *testing.T) {
	st := New(counterTransition, counter{})
	var calls []string
	st.Subscribe(func() { calls = append(calls, "a") })
	st.Subscribe(func() { calls = append(calls, "b") })
	st.Subscribe(func() { calls = append(calls, "c") })

	st.Dispatch(action{"INC"})
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	st.Dispatch(action{"NOOP"})
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, calls, "observers run even when state is unchanged")
}

func TestDuplicateSubscription(t *testing.T) {
	st := New(counterTransition, counter{})
	n := 0
	obs := func() { n++ }
	st.Subscribe(obs)
	st.Subscribe(obs)

	st.Dispatch(action{"INC"})
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, st.Observers())
}

func TestObserverSeesPostTransitionState(t *testing.T) {
	st := New(counterTransition, counter{})
	var seen []int
	st.Subscribe(func() { seen = append(seen, st.GetState().Count) })

	st.Dispatch(action{"INC"})
	st.Dispatch(action{"INC"})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestUnsubscribe(t *testing.T) {
	st := New(counterTransition, counter{})
	var calls []string
	subA := st.Subscribe(func() { calls = append(calls, "a") })
	st.Subscribe(func() { calls = append(calls, "b") })

	subA.Unsubscribe()
	subA.Unsubscribe()
	assert.Equal(t, 1, st.Observers())

	st.Dispatch(action{"INC"})
	assert.Equal(t, []string{"b"}, calls)

	Subscription{}.Unsubscribe()
	assert.Equal(t, Subscription{}, st.Subscribe(nil))
}

func TestUnsubscribeOneOfDuplicates(t *testing.T) {
	st := New(counterTransition, counter{})
	n := 0
	obs := func() { n++ }
	first := st.Subscribe(obs)
	st.Subscribe(obs)

	first.Unsubscribe()
	st.Dispatch(action{"INC"})
	assert.Equal(t, 1, n)
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	st := New(counterTransition, counter{})
	var calls []string
	var subB Subscription
	st.Subscribe(func() {
		calls = append(calls, "a")
		subB.Unsubscribe()
	})
	subB = st.Subscribe(func() { calls = append(calls, "b") })

	st.Dispatch(action{"INC"})
	assert.Equal(t, []string{"a"}, calls)
}

func TestSubscribeDuringNotification(t *testing.T) {
	st := New(counterTransition, counter{})
	var calls []string
	added := false
	st.Subscribe(func() {
		calls = append(calls, "outer")
		if !added {
			added = true
			st.Subscribe(func() { calls = append(calls, "late") })
		}
	})

	st.Dispatch(action{"INC"})
	assert.Equal(t, []string{"outer"}, calls)

	st.Dispatch(action{"INC"})
	assert.Equal(t, []string{"outer", "outer", "late"}, calls)
}

func TestReentrantDispatch(t *testing.T) {
	st := New(counterTransition, counter{})
	var seen []int
	st.Subscribe(func() {
		assert.True(t, st.Dispatching())
		if st.GetState().Count < 3 {
			st.Dispatch(action{"INC"})
		}
	})
	st.Subscribe(func() { seen = append(seen, st.GetState().Count) })

	st.Dispatch(action{"INC"})

	assert.Equal(t, 3, st.GetState().Count)
	assert.Equal(t, []int{3, 3, 3}, seen, "nested dispatches finish before the outer notification resumes")
	assert.False(t, st.Dispatching())
}

func TestTransitionPanicPropagates(t *testing.T) {
	st := New(func(s counter, a action) counter {
		if a.Type == "BOOM" {
			panic("bad action")
		}
		return counterTransition(s, a)
	}, counter{Count: 1})

	notified := false
	st.Subscribe(func() { notified = true })

	assert.PanicsWithValue(t, "bad action", func() { st.Dispatch(action{"BOOM"}) })
	assert.Equal(t, counter{Count: 1}, st.GetState())
	assert.False(t, notified)
	assert.False(t, st.Dispatching())
}

func TestHooksAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var depths []int
	st := New(counterTransition, counter{},
		WithLogger(logger),
		WithHooks(Hooks{OnDispatch: func(depth int, d time.Duration) {
			depths = append(depths, depth)
			assert.GreaterOrEqual(t, d, time.Duration(0))
		}}),
	)
	st.Subscribe(func() {
		if st.GetState().Count == 1 {
			st.Dispatch(action{"INC"})
		}
	})

	st.Dispatch(action{"INC"})

	require.Equal(t, []int{2, 1}, depths)
	assert.Contains(t, buf.String(), "msg=dispatch")
	assert.Contains(t, buf.String(), "action=store.action")
}

func TestStateIsReplacedNotMutated(t *testing.T) {
	type list struct{ Items []string }
	st := New(func(s list, item string) list {
		items := make([]string, len(s.Items), len(s.Items)+1)
		copy(items, s.Items)
		return list{Items: append(items, item)}
	}, list{})

	before := st.GetState()
	st.Dispatch("x")
	assert.Empty(t, before.Items)
	assert.Equal(t, []string{"x"}, st.GetState().Items)
}
