package markup

import (
	"fmt"
	"html/template"
	"reflect"
	"sort"
	"strings"
)

// Attr is a single attribute. Attrs built from an Attr literal keep the key
// exactly as written; use Kw for keyword-style names.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute mapping.
type Attrs []Attr

// Kw creates a keyword-style attribute. Underscores become hyphens and one
// trailing underscore is dropped, so Kw("class_", …) sets "class" and
// Kw("hx_post", …) sets "hx-post". The bare name "_" is kept as is.
func Kw(name string, value any) Attr {
	return Attr{Key: kwName(name), Value: value}
}

func kwName(name string) string {
	if name == "_" {
		return "_"
	}
	return strings.ReplaceAll(strings.TrimSuffix(name, "_"), "_", "-")
}

// ClassToggle is one entry of an ordered conditional class list.
type ClassToggle struct {
	Name string
	On   bool
}

// Classes is an ordered mapping of class names to whether they are enabled.
type Classes []ClassToggle

// attrEntry keys are "any" so mappings decoded into map[any]any can carry
// invalid keys until the element is serialized.
type attrEntry struct {
	key   any
	value any
}

type attrList []attrEntry

// merge returns a new list with src applied over l. Existing keys keep their
// position and take the new value.
func (l attrList) merge(src []attrEntry) attrList {
	out := make(attrList, len(l), len(l)+len(src))
	copy(out, l)
	for _, e := range src {
		replaced := false
		for i := range out {
			if out[i].key == e.key {
				out[i].value = e.value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, e)
		}
	}
	return out
}

// mappingEntries converts a positional attribute mapping into entries.
// Unordered Go maps are visited in sorted key order.
func mappingEntries(m any) ([]attrEntry, bool) {
	switch v := m.(type) {
	case nil:
		return nil, true
	case Attrs:
		return attrsEntries(v), true
	case []Attr:
		return attrsEntries(v), true
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]attrEntry, 0, len(keys))
		for _, k := range keys {
			out = append(out, attrEntry{key: k, value: v[k]})
		}
		return out, true
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]attrEntry, 0, len(keys))
		for _, k := range keys {
			out = append(out, attrEntry{key: k, value: v[k]})
		}
		return out, true
	case map[any]any:
		keys := make([]any, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
		})
		out := make([]attrEntry, 0, len(keys))
		for _, k := range keys {
			out = append(out, attrEntry{key: k, value: v[k]})
		}
		return out, true
	}
	return nil, false
}

func attrsEntries(attrs []Attr) []attrEntry {
	out := make([]attrEntry, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, attrEntry{key: a.Key, value: a.Value})
	}
	return out
}

// render serializes the list, each attribute prefixed by a space.
func (l attrList) render() (string, error) {
	if len(l) == 0 {
		return "", nil
	}
	var b strings.Builder
	for _, e := range l {
		key, ok := e.key.(string)
		if !ok || key == "" {
			return "", &AttributeKeyError{Key: e.key}
		}

		if key == "class" {
			cls, err := classNames(e.value)
			if err != nil {
				return "", err
			}
			if cls != "" {
				b.WriteString(` class="`)
				b.WriteString(cls)
				b.WriteByte('"')
			}
			continue
		}

		var value string
		switch v := e.value.(type) {
		case nil:
			continue
		case bool:
			if v {
				b.WriteByte(' ')
				b.WriteString(forceEscape(key))
			}
			continue
		case string, SafeString, template.HTML:
			value = forceEscape(v)
		default:
			n, ok := integerString(v)
			if !ok {
				return "", &AttributeValueError{Key: key, Value: e.value}
			}
			value = n
		}
		b.WriteByte(' ')
		b.WriteString(forceEscape(key))
		b.WriteString(`="`)
		b.WriteString(value)
		b.WriteByte('"')
	}
	return b.String(), nil
}

// classNames flattens a class value into escaped, space separated tokens.
func classNames(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "", nil
	case bool:
		if !c {
			return "", nil
		}
		return "", &AttributeValueError{Key: "class", Value: v}
	}
	tokens, err := appendClassTokens(nil, v)
	if err != nil {
		return "", err
	}
	return strings.Join(tokens, " "), nil
}

func appendClassTokens(dst []string, v any) ([]string, error) {
	switch c := v.(type) {
	case nil:
		return dst, nil
	case bool:
		if !c {
			return dst, nil
		}
		return nil, &AttributeValueError{Key: "class", Value: v}
	case string, SafeString, template.HTML:
		if s := forceEscape(c); s != "" {
			dst = append(dst, s)
		}
		return dst, nil
	case []string:
		for _, s := range c {
			if s != "" {
				dst = append(dst, forceEscape(s))
			}
		}
		return dst, nil
	case []any:
		var err error
		for _, item := range c {
			if dst, err = appendClassTokens(dst, item); err != nil {
				return nil, err
			}
		}
		return dst, nil
	case Classes:
		for _, t := range c {
			if t.On && t.Name != "" {
				dst = append(dst, forceEscape(t.Name))
			}
		}
		return dst, nil
	case map[string]bool:
		for _, k := range sortedKeys(c) {
			if c[k] && k != "" {
				dst = append(dst, forceEscape(k))
			}
		}
		return dst, nil
	case map[string]any:
		for _, k := range sortedKeys(c) {
			if truthy(c[k]) && k != "" {
				dst = append(dst, forceEscape(k))
			}
		}
		return dst, nil
	}
	if n, ok := integerString(v); ok {
		if n != "0" {
			dst = append(dst, n)
		}
		return dst, nil
	}
	return nil, &AttributeValueError{Key: "class", Value: v}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// truthy reports whether a conditional class value enables its class.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if n, ok := integerString(v); ok {
		return n != "0"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
