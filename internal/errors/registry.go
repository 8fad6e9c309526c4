package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	Example    string
	DocURL     string
}

const docBase = "https://hyper.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Markup Errors (H001-H099)
	// ============================================

	"H001": {
		Category:   CategoryMarkup,
		Message:    "Malformed element configuration",
		Detail:     "Elements accept at most an id/class shorthand string and one attribute mapping, followed by keyword attributes. Element names must be lowercase.",
		Suggestion: "Put the id before any classes and pass attributes as markup.Attrs or a map.",
		Example:    `Div.With("#main.card", map[string]any{"hidden": true}, Kw("data_id", 7))`,
		DocURL:     docBase + "H001",
	},
	"H002": {
		Category:   CategoryMarkup,
		Message:    "Invalid attribute key",
		Detail:     "Attribute keys must be non-empty strings.",
		Suggestion: "Use map[string]any or markup.Attrs for dynamic attributes.",
		DocURL:     docBase + "H002",
	},
	"H003": {
		Category:   CategoryMarkup,
		Message:    "Invalid attribute value",
		Detail:     "Attribute values may be strings, safe strings, integers, booleans or nil. Class values may also be lists and toggle maps.",
		Suggestion: "Format other values yourself, for example with strconv.FormatFloat.",
		DocURL:     docBase + "H003",
	},
	"H004": {
		Category:   CategoryMarkup,
		Message:    "Invalid child element",
		Detail:     "Children may be strings, integers, safe strings, elements, slices, sequences and zero-argument functions returning one of those. Channels and async functions need an async render.",
		Suggestion: "Convert the value to a string or element before adding it as a child.",
		DocURL:     docBase + "H004",
	},
	"H005": {
		Category:   CategoryMarkup,
		Message:    "Context value not provided",
		Detail:     "A consumer was rendered without an enclosing provider, and its context has no default value.",
		Suggestion: "Wrap the subtree in a Provider or create the context with NewContextWithDefault.",
		Example:    `theme.Provider("dark", func() Node { return page })`,
		DocURL:     docBase + "H005",
	},
	"H006": {
		Category:   CategoryMarkup,
		Message:    "Children on a void element",
		Detail:     "Void elements such as <br>, <img> and <input> cannot contain children.",
		Suggestion: "Place the content next to the void element instead of inside it.",
		DocURL:     docBase + "H006",
	},

	// ============================================
	// Config Errors (H100-H119)
	// ============================================

	"H100": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "hyper.json or hyper.yaml contains invalid settings.",
		DocURL:   docBase + "H100",
	},
	"H101": {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "The configuration file exists but could not be read or parsed.",
		DocURL:   docBase + "H101",
	},

	// ============================================
	// CLI Errors (H140-H159)
	// ============================================

	"H140": {
		Category:   CategoryCLI,
		Message:    "Port already in use",
		Detail:     "The server address is already bound by another process.",
		Suggestion: "Use --addr to pick another address.",
		DocURL:     docBase + "H140",
	},
	"H141": {
		Category: CategoryCLI,
		Message:  "Unknown demo page",
		Detail:   "The requested page is not one of the built-in demo pages.",
		DocURL:   docBase + "H141",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
