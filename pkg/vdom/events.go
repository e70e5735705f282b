package vdom

import "strings"

// EventPrefix marks attribute keys that carry event handlers.
const EventPrefix = "on"

// On binds handler to the named event. The name is prefixed with "on"
// (e.g., "click" becomes "onclick"). Handlers are func() or func(E) for the
// event type of the host surface; the materializer decides how to bind them.
func On(name string, handler any) Attr {
	return attr(EventPrefix+strings.ToLower(name), handler)
}

// IsEventKey reports whether key names an event attribute.
func IsEventKey(key string) bool {
	return len(key) > len(EventPrefix) && strings.HasPrefix(key, EventPrefix)
}

// EventName strips the "on" prefix: "onclick" becomes "click".
func EventName(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, EventPrefix))
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) Attr { return On("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) Attr { return On("dblclick", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) Attr { return On("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) Attr { return On("mouseleave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Attr { return On("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) Attr { return On("keyup", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler any) Attr { return On("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) Attr { return On("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) Attr { return On("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) Attr { return On("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) Attr { return On("blur", handler) }
