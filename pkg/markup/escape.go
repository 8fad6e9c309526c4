package markup

import (
	"fmt"
	"html"
	"html/template"
	"strconv"
)

// SafeString is markup that is already escaped. It is emitted verbatim as a
// child and never escaped a second time by Escape.
type SafeString string

// HTMLer is implemented by values that render themselves as safe markup.
type HTMLer interface {
	HTML() SafeString
}

// Raw marks s as safe markup. Use it only with trusted content.
func Raw(s string) SafeString {
	return SafeString(s)
}

// Escape returns v as safe markup. Values that are already safe are returned
// unchanged; anything else is stringified and HTML-escaped.
func Escape(v any) SafeString {
	switch s := v.(type) {
	case SafeString:
		return s
	case template.HTML:
		return SafeString(s)
	case HTMLer:
		return s.HTML()
	case string:
		return SafeString(html.EscapeString(s))
	default:
		return SafeString(html.EscapeString(fmt.Sprint(v)))
	}
}

// forceEscape escapes the textual form of v even when it is marked safe.
// Attribute names, values and class tokens always go through here.
func forceEscape(v any) string {
	switch s := v.(type) {
	case string:
		return html.EscapeString(s)
	case SafeString:
		return html.EscapeString(string(s))
	case template.HTML:
		return html.EscapeString(string(s))
	}
	if n, ok := integerString(v); ok {
		return n
	}
	return html.EscapeString(fmt.Sprint(v))
}

// integerString formats Go integer kinds. Floats are deliberately absent.
func integerString(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	}
	return "", false
}
