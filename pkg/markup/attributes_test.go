package markup

import (
	"errors"
	"strings"
	"testing"
)

func TestAttributeRendering(t *testing.T) {
	th := Tag("th")

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "keyword attribute",
			node: div.With(Kw("id", "hello")).Fill("hi"),
			want: `<div id="hello">hi</div>`,
		},
		{
			name: "mapping attribute",
			node: div.With(Attrs{{Key: "@click", Value: `hi = "hello"`}}),
			want: `<div @click="hi = &#34;hello&#34;"></div>`,
		},
		{
			name: "underscore passes through",
			node: div.With(Kw("_", "foo")),
			want: `<div _="foo"></div>`,
		},
		{
			name: "mapping keys are not renamed",
			node: div.With(Attrs{{Key: "class_", Value: "foo"}, {Key: "hello_hi", Value: "abc"}}),
			want: `<div class_="foo" hello_hi="abc"></div>`,
		},
		{
			name: "keyword underscores become hyphens",
			node: button.With(Kw("hx_post", "/foo")).Fill("click me!"),
			want: `<button hx-post="/foo">click me!</button>`,
		},
		{
			name: "mapping false",
			node: div.With(Attrs{{Key: "bool-false", Value: false}}),
			want: `<div></div>`,
		},
		{
			name: "mapping true",
			node: div.With(Attrs{{Key: "bool-true", Value: true}}),
			want: `<div bool-true></div>`,
		},
		{
			name: "boolean true",
			node: button.With(Kw("disabled", true)),
			want: `<button disabled></button>`,
		},
		{
			name: "boolean false",
			node: button.With(Kw("disabled", false)),
			want: `<button></button>`,
		},
		{
			name: "keyword nil",
			node: div.With(Kw("foo", nil)),
			want: `<div></div>`,
		},
		{
			name: "mapping nil",
			node: div.With(map[string]any{"foo": nil}),
			want: `<div></div>`,
		},
		{
			name: "integer",
			node: th.With(Kw("colspan", 123)),
			want: `<th colspan="123"></th>`,
		},
		{
			name: "unsigned integer",
			node: th.With(Kw("rowspan", uint8(2))),
			want: `<th rowspan="2"></th>`,
		},
		{
			name: "escaped mapping key and value",
			node: div.With(Attrs{{Key: `<"foo`, Value: `<"foo`}}),
			want: `<div &lt;&#34;foo="&lt;&#34;foo"></div>`,
		},
		{
			name: "safe value is still escaped",
			node: div.With(Kw(`<"foo`, Raw(`<"foo`))),
			want: `<div &lt;&#34;foo="&lt;&#34;foo"></div>`,
		},
		{
			name: "sorted plain map",
			node: div.With(map[string]string{"b": "2", "a": "1"}),
			want: `<div a="1" b="2"></div>`,
		},
		{
			name: "keywords override mapping in place",
			node: div.With(Attrs{{Key: "a", Value: "1"}, {Key: "for", Value: "a"}}, Kw("for_", "b"), Kw("b", "2")),
			want: `<div a="1" for="b" b="2"></div>`,
		},
		{
			name: "keyword overrides mapping",
			node: div.With(Attrs{{Key: "foo", Value: "a"}}, Kw("foo", "b")),
			want: `<div foo="b"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderBoth(t, tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassNames(t *testing.T) {
	tests := []struct {
		name  string
		class any
		want  string
	}{
		{name: "string", class: `">foo bar`, want: `<div class="&#34;&gt;foo bar"></div>`},
		{name: "safe string", class: Raw(`">foo bar`), want: `<div class="&#34;&gt;foo bar"></div>`},
		{
			name:  "list",
			class: []any{`">foo`, Raw(`">bar`), false, nil, "", "baz"},
			want:  `<div class="&#34;&gt;foo &#34;&gt;bar baz"></div>`,
		},
		{name: "string slice", class: []string{"a", "", "b"}, want: `<div class="a b"></div>`},
		{
			name:  "ordered toggles",
			class: Classes{{Name: `">foo`, On: true}, {Name: "x", On: false}, {Name: "baz", On: true}},
			want:  `<div class="&#34;&gt;foo baz"></div>`,
		},
		{
			name:  "map in sorted order",
			class: map[string]bool{"zeta": true, "alpha": true, "off": false},
			want:  `<div class="alpha zeta"></div>`,
		},
		{
			name:  "nested mapping",
			class: []any{`">list-foo`, map[string]bool{`">dict-foo`: true, "x": false}},
			want:  `<div class="&#34;&gt;list-foo &#34;&gt;dict-foo"></div>`,
		},
		{
			name:  "nested sequences",
			class: []any{"a", []any{"b", []string{"c"}}},
			want:  `<div class="a b c"></div>`,
		},
		{
			name:  "truthy map values",
			class: map[string]any{"on": 1, "off": 0, "text": "yes", "empty": ""},
			want:  `<div class="on text"></div>`,
		},
		{name: "false", class: false, want: `<div></div>`},
		{name: "nil", class: nil, want: `<div></div>`},
		{name: "no classes", class: map[string]bool{"foo": false}, want: `<div></div>`},
		{name: "empty list", class: []any{}, want: `<div></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderBoth(t, div.With(Kw("class_", tt.class))); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassPriority(t *testing.T) {
	got := renderBoth(t, div.With(".a", Attrs{{Key: "class", Value: "b"}}, Kw("class_", "c")))
	if got != `<div class="c"></div>` {
		t.Errorf("with keyword: got %q", got)
	}

	got = renderBoth(t, div.With(".a", Attrs{{Key: "class", Value: "b"}}))
	if got != `<div class="b"></div>` {
		t.Errorf("without keyword: got %q", got)
	}
}

func TestInvalidAttributeKey(t *testing.T) {
	for _, key := range []any{1234, 0, nil, 1.5} {
		node := div.With(map[any]any{key: "foo"})
		_, err := Render(node)
		var keyErr *AttributeKeyError
		if !errors.As(err, &keyErr) {
			t.Fatalf("key %#v: expected AttributeKeyError, got %v", key, err)
		}
		if !strings.Contains(err.Error(), "attribute key must be a string") {
			t.Errorf("unexpected message %q", err.Error())
		}
	}

	if _, err := Render(div.With(Attrs{{Key: "", Value: "x"}})); err == nil {
		t.Error("empty key should fail")
	}
}

func TestInvalidAttributeValue(t *testing.T) {
	for _, value := range []any{12.34, float32(1), []byte("foo"), struct{}{}, complex(1, 2)} {
		// Configuration succeeds; validation happens at render time.
		node := div.With(Kw("foo", value))
		_, err := Render(node)
		var valErr *AttributeValueError
		if !errors.As(err, &valErr) {
			t.Fatalf("value %#v: expected AttributeValueError, got %v", value, err)
		}
		if valErr.Key != "foo" {
			t.Errorf("Key = %q, want %q", valErr.Key, "foo")
		}
	}
}

func TestInvalidClassValue(t *testing.T) {
	for _, value := range []any{true, 1.5, []any{"ok", 2.5}} {
		_, err := Render(div.With(Kw("class_", value)))
		var valErr *AttributeValueError
		if !errors.As(err, &valErr) {
			t.Errorf("class %#v: expected AttributeValueError, got %v", value, err)
		}
	}
}

func TestKwName(t *testing.T) {
	tests := map[string]string{
		"_":           "_",
		"class_":      "class",
		"for_":        "for",
		"data_foo":    "data-foo",
		"hx_on_click": "hx-on-click",
		"plain":       "plain",
	}
	for in, want := range tests {
		if got := kwName(in); got != want {
			t.Errorf("kwName(%q) = %q, want %q", in, got, want)
		}
	}
}
