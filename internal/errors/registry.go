package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://vlite.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Host surface errors (E100-E199)
	"E101": {
		Category: CategoryHost,
		Message:  "Invalid element type",
		Detail:   "The host surface cannot create an element of this type. Element kinds must be non-empty names made of letters, digits and '-'.",
		DocURL:   docBase + "E101",
	},
	"E102": {
		Category: CategoryHost,
		Message:  "Foreign host node",
		Detail:   "A node passed to the surface was not created by it.",
		DocURL:   docBase + "E102",
	},

	// Application errors (E200-E299)
	"E201": {
		Category: CategoryApp,
		Message:  "Root producer is nil",
		Detail:   "CreateApp needs a function that builds the root node from state.",
		DocURL:   docBase + "E201",
	},
	"E202": {
		Category: CategoryApp,
		Message:  "Missing store or surface",
		Detail:   "CreateApp needs a store, a host surface and a root host node.",
		DocURL:   docBase + "E202",
	},
	"E203": {
		Category: CategoryApp,
		Message:  "Render failed",
		Detail:   "Materializing the root node onto the host surface failed. The partial subtree was not attached.",
		DocURL:   docBase + "E203",
	},

	// Configuration errors (E300-E399)
	"E301": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "vlite.json contains a value outside its allowed range.",
		DocURL:   docBase + "E301",
	},
	"E302": {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "vlite.json exists but could not be read or parsed.",
		DocURL:   docBase + "E302",
	},

	// Protocol errors (E400-E499)
	"E401": {
		Category: CategoryProtocol,
		Message:  "Unknown event target",
		Detail:   "The event names a node id that is not mounted in this session. The page may be stale.",
		DocURL:   docBase + "E401",
	},
	"E402": {
		Category: CategoryProtocol,
		Message:  "Malformed client message",
		Detail:   "The websocket message could not be decoded.",
		DocURL:   docBase + "E402",
	},

	// Publish errors (E500-E599)
	"E501": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "The rendered snapshot could not be written to its destination.",
		DocURL:   docBase + "E501",
	},
	"E502": {
		Category: CategoryPublish,
		Message:  "Publish target not configured",
		Detail:   "Set publish.bucket in vlite.json or pass --bucket / --dir.",
		DocURL:   docBase + "E502",
	},

	// CLI errors (E600-E699)
	"E601": {
		Category: CategoryCLI,
		Message:  "Unknown demo application",
		Detail:   "The requested application is not registered.",
		DocURL:   docBase + "E601",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns every registered code.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}
