package demo

import (
	"strconv"
	"strings"

	"github.com/vango-dev/vlite/pkg/app"
	"github.com/vango-dev/vlite/pkg/host/memdom"
	"github.com/vango-dev/vlite/pkg/store"
	. "github.com/vango-dev/vlite/pkg/vdom"
)

// TodoItem is one entry of the list.
type TodoItem struct {
	ID    int
	Title string
	Done  bool
}

// TodoState is the todo list's state. Items are never mutated in place.
type TodoState struct {
	Items  []TodoItem
	Draft  string
	NextID int
}

// Remaining counts items not yet done.
func (s TodoState) Remaining() int {
	n := 0
	for _, it := range s.Items {
		if !it.Done {
			n++
		}
	}
	return n
}

// TodoActionType names a todo action.
type TodoActionType string

const (
	TodoDraft          TodoActionType = "DRAFT"
	TodoAdd            TodoActionType = "ADD"
	TodoToggle         TodoActionType = "TOGGLE"
	TodoClearCompleted TodoActionType = "CLEAR_COMPLETED"
)

// TodoAction is a todo action. ID is used by TodoToggle, Text by TodoDraft.
type TodoAction struct {
	Type TodoActionType
	ID   int
	Text string
}

// ReduceTodo is the todo transition.
func ReduceTodo(s TodoState, a TodoAction) TodoState {
	switch a.Type {
	case TodoDraft:
		s.Draft = a.Text
	case TodoAdd:
		title := strings.TrimSpace(s.Draft)
		if title == "" {
			return s
		}
		s.NextID++
		items := make([]TodoItem, 0, len(s.Items)+1)
		items = append(items, s.Items...)
		s.Items = append(items, TodoItem{ID: s.NextID, Title: title})
		s.Draft = ""
	case TodoToggle:
		items := make([]TodoItem, len(s.Items))
		copy(items, s.Items)
		for i := range items {
			if items[i].ID == a.ID {
				items[i].Done = !items[i].Done
			}
		}
		s.Items = items
	case TodoClearCompleted:
		items := make([]TodoItem, 0, len(s.Items))
		for _, it := range s.Items {
			if !it.Done {
				items = append(items, it)
			}
		}
		s.Items = items
	}
	return s
}

// TodoView renders the list, binding its controls to dispatch.
func TodoView(dispatch func(TodoAction)) func(TodoState) *VNode {
	return func(s TodoState) *VNode {
		remaining := s.Remaining()
		unit := "items"
		if remaining == 1 {
			unit = "item"
		}
		return Section(Class("todo"),
			H1("Todo"),
			Input(Class("new"), Placeholder("What needs doing?"), Value(s.Draft),
				OnInput(func(v string) { dispatch(TodoAction{Type: TodoDraft, Text: v}) })),
			Button(Class("add"), OnClick(func() { dispatch(TodoAction{Type: TodoAdd}) }), "Add"),
			Ul(Class("items"), Range(s.Items, func(it TodoItem, _ int) *VNode {
				id := it.ID
				return Li(ClassIf(it.Done, "done"), Data("id", strconv.Itoa(id)),
					Input(Type("checkbox"), Checked(it.Done),
						OnChange(func() { dispatch(TodoAction{Type: TodoToggle, ID: id}) })),
					Span(it.Title),
				)
			})),
			Footer(
				Span(Class("remaining"), Textf("%d %s left", remaining, unit)),
				If(remaining < len(s.Items),
					Button(Class("clear"), OnClick(func() { dispatch(TodoAction{Type: TodoClearCompleted}) }), "Clear completed"),
				),
			),
		)
	}
}

// MountTodo mounts an empty todo list.
func MountTodo(doc *memdom.Document, root *memdom.Element, setup Setup) (App, error) {
	st := store.New(ReduceTodo, TodoState{}, setup.storeOptions()...)
	a, err := app.CreateApp(TodoView(st.Dispatch), root, doc, st, setup.appOptions()...)
	return mount(a, err)
}
