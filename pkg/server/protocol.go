package server

// Message types.
const (
	TypeEvent  = "event"
	TypeRender = "render"
	TypeError  = "error"
)

// ClientMessage is a frame sent by the browser.
type ClientMessage struct {
	Type  string `json:"type"`
	HID   string `json:"hid"`
	Event string `json:"event"`
	Value string `json:"value,omitempty"`
}

// ServerMessage is a frame sent to the browser.
type ServerMessage struct {
	Type    string `json:"type"`
	HTML    string `json:"html,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
