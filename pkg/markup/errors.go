package markup

import "fmt"

// Diagnostic codes reported by Code methods. They index the registry in
// internal/errors.
const (
	CodeFormat         = "H001"
	CodeAttributeKey   = "H002"
	CodeAttributeValue = "H003"
	CodeInvalidChild   = "H004"
	CodeLookup         = "H005"
	CodeType           = "H006"
)

// FormatError reports a malformed id/class shorthand or positional argument.
// It is returned eagerly by Configure.
type FormatError struct {
	Input  any
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// Code returns the diagnostic code.
func (e *FormatError) Code() string { return CodeFormat }

// AttributeKeyError reports an attribute key that is not a non-empty string.
type AttributeKeyError struct {
	Key any
}

func (e *AttributeKeyError) Error() string {
	return fmt.Sprintf("attribute key must be a string, got %#v", e.Key)
}

// Code returns the diagnostic code.
func (e *AttributeKeyError) Code() string { return CodeAttributeKey }

// AttributeValueError reports an attribute value outside the accepted types:
// strings, booleans, nil, integers and class-name composites for "class".
type AttributeValueError struct {
	Key   string
	Value any
}

func (e *AttributeValueError) Error() string {
	return fmt.Sprintf("attribute value must be a string, boolean, integer or nil, got %T for %q", e.Value, e.Key)
}

// Code returns the diagnostic code.
func (e *AttributeValueError) Code() string { return CodeAttributeValue }

// InvalidChildError reports a resolved child that cannot become markup.
type InvalidChildError struct {
	Value any
	// Hint is set when the value is valid in another evaluation mode.
	Hint string
}

func (e *InvalidChildError) Error() string {
	msg := fmt.Sprintf("%#v (%T) is not a valid child element", e.Value, e.Value)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// Code returns the diagnostic code.
func (e *InvalidChildError) Code() string { return CodeInvalidChild }

// LookupError reports a consumer evaluated with no enclosing provider for a
// context that has no default.
type LookupError struct {
	Context   string
	Requester string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("context value for %q does not exist, requested by %s()", e.Context, e.Requester)
}

// Code returns the diagnostic code.
func (e *LookupError) Code() string { return CodeLookup }

// TypeError reports an attempt to attach children to a void element.
type TypeError struct {
	Tag string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("void element <%s> cannot have children", e.Tag)
}

// Code returns the diagnostic code.
func (e *TypeError) Code() string { return CodeType }
