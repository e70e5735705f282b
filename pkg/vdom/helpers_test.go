package vdom

import "testing"

func TestConditionals(t *testing.T) {
	a, b := Div(), Span()

	if If(true, a) != a || If(false, a) != nil {
		t.Error("If")
	}
	if IfElse(true, a, b) != a || IfElse(false, a, b) != b {
		t.Error("IfElse")
	}
	if Unless(false, a) != a || Unless(true, a) != nil {
		t.Error("Unless")
	}

	called := false
	if When(false, func() *VNode { called = true; return a }) != nil || called {
		t.Error("When(false) should not call fn")
	}
	if When(true, func() *VNode { return a }) != a {
		t.Error("When(true)")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "skip", "c"}
	nodes := Range(items, func(s string, i int) *VNode {
		if s == "skip" {
			return nil
		}
		return Li(s)
	})
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}

	list := Ul(Li("first"), nodes)
	if len(list.Content) != 3 {
		t.Errorf("spliced Content len = %d, want 3", len(list.Content))
	}
	if TextContent(list) != "firstac" {
		t.Errorf("TextContent = %q", TextContent(list))
	}
}

func TestRepeat(t *testing.T) {
	if Repeat(0, func(int) *VNode { return Div() }) != nil {
		t.Error("Repeat(0) should be nil")
	}
	if n := len(Repeat(3, func(int) *VNode { return Div() })); n != 3 {
		t.Errorf("Repeat(3) len = %d", n)
	}
}

func TestWalkAndCount(t *testing.T) {
	tree := Div(P("a"), Ul(Li("b"), Li("c")))

	if n := Count(tree); n != 8 {
		t.Errorf("Count = %d, want 8", n)
	}

	var kinds []string
	Walk(tree, func(n *VNode, depth int) bool {
		kinds = append(kinds, n.Kind)
		return n.Kind != "ul"
	})
	want := []string{"div", "p", TextKind, "ul"}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit[%d] = %q, want %q", i, kinds[i], want[i])
		}
	}

	if Count(nil) != 0 {
		t.Error("Count(nil) should be 0")
	}
}
