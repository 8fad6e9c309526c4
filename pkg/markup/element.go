package markup

import (
	"fmt"
	"strings"
)

const doctype = "<!doctype html>"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid reports whether name is a void element.
func IsVoid(name string) bool {
	return voidElements[name]
}

// Element is an HTML element with attributes and children. The zero value is
// not usable; create elements with Tag or Document.
type Element struct {
	name     string
	attrs    attrList
	children Node
	doctype  bool
}

// VoidElement is an element that never has children, such as <img> or <br>.
type VoidElement struct {
	name  string
	attrs attrList
}

// Tag returns an element for name. Underscores are converted to hyphens so
// Tag("my_widget") renders <my-widget>. Tag panics if name is not a valid
// lowercase element name or names a void element; use Lookup for names that
// are not known at compile time.
func Tag(name string) Element {
	el, err := newElement(name)
	if err != nil {
		panic("markup: " + err.Error())
	}
	return el
}

// Void returns the void element called name. It panics for names outside the
// void element registry.
func Void(name string) VoidElement {
	if !IsVoid(name) {
		panic(fmt.Sprintf("markup: %q is not a void element", name))
	}
	return VoidElement{name: name}
}

// Document returns the <html> root element, which is preceded by the HTML5
// doctype when rendered.
func Document() Element {
	return Element{name: "html", doctype: true}
}

// Lookup resolves name dynamically: void names give a VoidElement, "html"
// gives the document root and anything else an Element.
func Lookup(name string) (Node, error) {
	if IsVoid(name) {
		return VoidElement{name: name}, nil
	}
	if name == "html" {
		return Document(), nil
	}
	return newElement(name)
}

func newElement(name string) (Element, error) {
	if name == "" || strings.ToLower(name) != name || strings.ContainsAny(name, " \t\n<>\"'/=") {
		return Element{}, &FormatError{
			Input:  name,
			Reason: fmt.Sprintf("%q is not a valid element name. html elements must have all lowercase names", name),
		}
	}
	name = strings.ReplaceAll(name, "_", "-")
	if IsVoid(name) {
		return Element{}, &FormatError{Input: name, Reason: fmt.Sprintf("%q is a void element, use Void", name)}
	}
	return Element{name: name}, nil
}

// Name returns the tag name.
func (e Element) Name() string { return e.name }

// Configure returns a copy of e with attributes merged in. Arguments are an
// optional "#id.class" shorthand string, an optional attribute mapping and
// any number of keyword attributes (see Kw). Later groups take precedence:
// shorthand, then mapping, then keywords.
func (e Element) Configure(args ...any) (Element, error) {
	attrs, err := configure(e.attrs, args)
	if err != nil {
		return e, err
	}
	e.attrs = attrs
	return e, nil
}

// With is like Configure but panics on a malformed shorthand. It is meant for
// literal arguments written in code.
func (e Element) With(args ...any) Element {
	el, err := e.Configure(args...)
	if err != nil {
		panic("markup: " + err.Error())
	}
	return el
}

// Fill returns a copy of e whose children are replaced by children. A single
// child is stored as is; several are stored as a []Node.
func (e Element) Fill(children ...Node) Element {
	switch len(children) {
	case 0:
		e.children = nil
	case 1:
		e.children = children[0]
	default:
		e.children = append([]Node(nil), children...)
	}
	return e
}

func (e Element) openTag() (string, error) {
	attrs, err := e.attrs.render()
	if err != nil {
		return "", err
	}
	return "<" + e.name + attrs + ">", nil
}

func (e Element) closeTag() string {
	return "</" + e.name + ">"
}

// Name returns the tag name.
func (v VoidElement) Name() string { return v.name }

// Configure returns a copy of v with attributes merged in, following the same
// rules as Element.Configure.
func (v VoidElement) Configure(args ...any) (VoidElement, error) {
	attrs, err := configure(v.attrs, args)
	if err != nil {
		return v, err
	}
	v.attrs = attrs
	return v, nil
}

// With is like Configure but panics on a malformed shorthand.
func (v VoidElement) With(args ...any) VoidElement {
	el, err := v.Configure(args...)
	if err != nil {
		panic("markup: " + err.Error())
	}
	return el
}

func (v VoidElement) openTag() (string, error) {
	attrs, err := v.attrs.render()
	if err != nil {
		return "", err
	}
	return "<" + v.name + attrs + ">", nil
}

// Fill attaches children to n, which must be an Element. Void elements
// report a *TypeError.
func Fill(n Node, children ...Node) (Element, error) {
	switch el := n.(type) {
	case Element:
		return el.Fill(children...), nil
	case VoidElement:
		return Element{}, &TypeError{Tag: el.name}
	}
	return Element{}, &InvalidChildError{Value: n, Hint: "only elements accept children"}
}

func configure(base attrList, args []any) (attrList, error) {
	split := len(args)
	for i, a := range args {
		if _, ok := a.(Attr); ok {
			split = i
			break
		}
	}
	positional, keywords := args[:split], args[split:]

	var idClass string
	var mapping any
	switch len(positional) {
	case 0:
	case 1:
		if s, ok := positional[0].(string); ok {
			idClass = s
		} else {
			mapping = positional[0]
		}
	case 2:
		s, ok := positional[0].(string)
		if !ok {
			return nil, &FormatError{
				Input:  positional[0],
				Reason: fmt.Sprintf("id/class strings must be str. got %v", positional[0]),
			}
		}
		idClass, mapping = s, positional[1]
	default:
		return nil, &FormatError{
			Input:  positional,
			Reason: fmt.Sprintf("expected at most an id/class string and an attribute mapping, got %d positional arguments", len(positional)),
		}
	}

	attrs := base
	if idClass != "" {
		parsed, err := parseIDClass(idClass)
		if err != nil {
			return nil, err
		}
		attrs = attrs.merge(parsed)
	}
	if mapping != nil {
		entries, ok := mappingEntries(mapping)
		if !ok {
			return nil, &FormatError{Input: mapping, Reason: fmt.Sprintf("attributes must be a mapping, got %T", mapping)}
		}
		attrs = attrs.merge(entries)
	}
	if len(keywords) > 0 {
		entries := make([]attrEntry, 0, len(keywords))
		for _, k := range keywords {
			a, ok := k.(Attr)
			if !ok {
				return nil, &FormatError{Input: k, Reason: fmt.Sprintf("positional argument %v follows keyword attributes", k)}
			}
			entries = append(entries, attrEntry{key: a.Key, value: a.Value})
		}
		attrs = attrs.merge(entries)
	}
	if attrs == nil {
		attrs = attrList{}
	}
	return attrs, nil
}

// parseIDClass parses "#id.class1.class2" shorthand.
func parseIDClass(s string) ([]attrEntry, error) {
	hash, dot := strings.Index(s, "#"), strings.Index(s, ".")
	if hash >= 0 && dot >= 0 && hash > dot {
		return nil, &FormatError{Input: s, Reason: "id (#) must be specified before classes (.)"}
	}
	if s[0] != '#' && s[0] != '.' {
		return nil, &FormatError{Input: s, Reason: "id/class strings must start with # or ."}
	}

	var id string
	var classes []string
	for _, part := range strings.Split(s, ".") {
		switch {
		case strings.HasPrefix(part, "#"):
			id = strings.TrimPrefix(part, "#")
		case part != "":
			classes = append(classes, part)
		}
	}

	var out []attrEntry
	if id != "" {
		out = append(out, attrEntry{key: "id", value: id})
	}
	if len(classes) > 0 {
		out = append(out, attrEntry{key: "class", value: strings.Join(classes, " ")})
	}
	return out, nil
}
