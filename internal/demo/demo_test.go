package demo

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vlite/internal/errors"
	"github.com/vango-dev/vlite/pkg/host"
	"github.com/vango-dev/vlite/pkg/host/memdom"
	"github.com/vango-dev/vlite/pkg/metrics"
	"github.com/vango-dev/vlite/pkg/store"
	"github.com/vango-dev/vlite/pkg/vtest"
)

func TestReduceCounter(t *testing.T) {
	tests := []struct {
		name   string
		state  CounterState
		action CounterAction
		want   int
	}{
		{"inc", CounterState{Count: 1}, Inc, 2},
		{"dec", CounterState{Count: 1}, Dec, 0},
		{"dec below zero", CounterState{}, Dec, -1},
		{"reset", CounterState{Count: 9}, Reset, 0},
		{"unknown", CounterState{Count: 4}, "JUMP", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReduceCounter(tt.state, tt.action).Count)
		})
	}
}

func TestCounterEndToEnd(t *testing.T) {
	st := store.New(ReduceCounter, CounterState{})
	m := vtest.Mount(t, CounterView(st.Dispatch), st)

	m.ExpectHTML(`<div class="counter"><h1>Counter</h1><p class="count">Count: 0</p>` +
		`<button class="dec">-</button><button class="inc">+</button>` +
		`<button class="reset" disabled>Reset</button></div>`)

	m.Click(memdom.ByProperty("class", "inc"))
	m.Click(memdom.ByProperty("class", "inc"))
	m.Click(memdom.ByProperty("class", "dec"))
	assert.Equal(t, "Count: 1", m.Find(memdom.ByProperty("class", "count")).TextContent())

	m.Click(memdom.ByProperty("class", "reset"))
	assert.Equal(t, 0, m.State().Count)
	assert.Equal(t, 5, m.App.Renders())
}

func TestReduceTodo(t *testing.T) {
	s := TodoState{}
	s = ReduceTodo(s, TodoAction{Type: TodoDraft, Text: "  milk "})
	s = ReduceTodo(s, TodoAction{Type: TodoAdd})
	s = ReduceTodo(s, TodoAction{Type: TodoAdd})
	require.Len(t, s.Items, 1, "empty draft is not added")
	assert.Equal(t, TodoItem{ID: 1, Title: "milk"}, s.Items[0])

	s = ReduceTodo(s, TodoAction{Type: TodoDraft, Text: "eggs"})
	s = ReduceTodo(s, TodoAction{Type: TodoAdd})

	before := s
	s = ReduceTodo(s, TodoAction{Type: TodoToggle, ID: 1})
	assert.True(t, s.Items[0].Done)
	assert.False(t, before.Items[0].Done, "toggle must not mutate the previous state")
	assert.Equal(t, 1, s.Remaining())

	s = ReduceTodo(s, TodoAction{Type: TodoClearCompleted})
	require.Len(t, s.Items, 1)
	assert.Equal(t, "eggs", s.Items[0].Title)
	assert.Len(t, before.Items, 2)
}

func TestTodoEndToEnd(t *testing.T) {
	st := store.New(ReduceTodo, TodoState{})
	m := vtest.Mount(t, TodoView(st.Dispatch), st)

	for _, title := range []string{"milk", "eggs", "bread"} {
		m.Input(memdom.ByProperty("class", "new"), title)
		m.Click(memdom.ByProperty("class", "add"))
	}
	assert.Equal(t, "3 items left", m.Find(memdom.ByProperty("class", "remaining")).TextContent())
	assert.Nil(t, m.Doc.Root().Find(memdom.ByProperty("class", "clear")))

	m.Find(memdom.ByProperty("data-id", "2")).Find(memdom.ByTag("input")).Dispatch(host.Event{Type: "change"})
	assert.Equal(t, "2 items left", m.Find(memdom.ByProperty("class", "remaining")).TextContent())
	assert.Contains(t, m.HTML(), `<li class="done" data-id="2"><input checked type="checkbox"><span>eggs</span></li>`)

	m.Click(memdom.ByProperty("class", "clear"))
	assert.Len(t, m.State().Items, 2)
	assert.NotContains(t, m.Text(), "eggs")
	draft, _ := m.Find(memdom.ByProperty("class", "new")).Property("value")
	assert.Equal(t, "", draft)
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"counter", "todo"}, Names())

	f, err := Lookup("counter")
	require.NoError(t, err)
	doc := memdom.New("body")
	a, err := f(doc, doc.Root(), Setup{})
	require.NoError(t, err)
	defer a.Close()
	assert.Contains(t, doc.Root().TextContent(), "Count: 0")

	_, err = Lookup("chess")
	assert.Equal(t, "E601", errors.CodeOf(err))
}

func TestSetupMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(metrics.WithRegistry(reg))
	doc := memdom.New("body")

	a, err := MountTodo(doc, doc.Root(), Setup{Metrics: m})
	require.NoError(t, err)
	defer a.Close()

	doc.Root().Find(memdom.ByProperty("class", "new")).Input("tea")

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["vlite_renders_total"])
	assert.True(t, names["vlite_dispatches_total"])
}
