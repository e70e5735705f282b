package vdom

import "testing"

func TestAttributes(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		key  string
		val  any
	}{
		{"ID", ID("main"), "id", "main"},
		{"Class joined", Class("a", "b"), "class", "a b"},
		{"Data", Data("id", "7"), "data-id", "7"},
		{"Type", Type("text"), "type", "text"},
		{"Value", Value("v"), "value", "v"},
		{"Placeholder", Placeholder("p"), "placeholder", "p"},
		{"Checked", Checked(true), "checked", true},
		{"Disabled", Disabled(false), "disabled", false},
		{"For", For("x"), "for", "x"},
		{"Href", Href("/a"), "href", "/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.key)
			}
			if tt.attr.Value != tt.val {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.val)
			}
		})
	}
}

func TestClassIf(t *testing.T) {
	if !ClassIf(false, "done").IsEmpty() {
		t.Error("ClassIf(false) should be empty")
	}
	if ClassIf(true, "done").Value != "done" {
		t.Error("ClassIf(true) should set class")
	}
}

func TestProps(t *testing.T) {
	p := Props(ID("a"), Attr{}, Class("x"), ID("b"))
	if len(p) != 2 {
		t.Fatalf("Props len = %d, want 2", len(p))
	}
	if p["id"] != "b" {
		t.Errorf("id = %v, want b", p["id"])
	}
}

func TestEvents(t *testing.T) {
	tests := []struct {
		attr Attr
		key  string
	}{
		{OnClick(nil), "onclick"},
		{OnInput(nil), "oninput"},
		{OnChange(nil), "onchange"},
		{OnSubmit(nil), "onsubmit"},
		{OnKeyDown(nil), "onkeydown"},
		{On("DblClick", nil), "ondblclick"},
	}
	for _, tt := range tests {
		if tt.attr.Key != tt.key {
			t.Errorf("Key = %q, want %q", tt.attr.Key, tt.key)
		}
		if !IsEventKey(tt.attr.Key) {
			t.Errorf("IsEventKey(%q) = false", tt.attr.Key)
		}
	}

	if IsEventKey("on") || IsEventKey("class") {
		t.Error("IsEventKey accepted a non-event key")
	}
	if EventName("onClick") != "click" {
		t.Errorf("EventName = %q, want click", EventName("onClick"))
	}
}
