package markup

import (
	"reflect"
	"runtime"
	"strings"
)

// Context is a named, typed slot for ambient values. Two contexts are never
// the same slot, even when they share a name.
type Context[T any] struct {
	name       string
	def        T
	hasDefault bool
}

// NewContext creates a context without a default. Consumers evaluated outside
// any Provider fail with a *LookupError.
func NewContext[T any](name string) *Context[T] {
	return &Context[T]{name: name}
}

// NewContextWithDefault creates a context whose consumers receive def when no
// Provider encloses them.
func NewContextWithDefault[T any](name string, def T) *Context[T] {
	return &Context[T]{name: name, def: def, hasDefault: true}
}

// Name returns the context name.
func (c *Context[T]) Name() string { return c.name }

// Default returns the default value and whether one was declared.
func (c *Context[T]) Default() (T, bool) { return c.def, c.hasDefault }

// Provider returns a lazy node that renders thunk's result with value bound
// to c. The binding covers everything produced beneath it, including
// callables and generators that are only evaluated later.
func (c *Context[T]) Provider(value T, thunk func() Node) Node {
	return provider[T]{ctx: c, value: value, thunk: thunk}
}

// Consumer returns a lazy node that calls fn with the value bound to c by the
// nearest enclosing Provider, or the default. fn runs when the node is
// flattened, not when Consumer is called.
func (c *Context[T]) Consumer(fn func(T) Node) Node {
	return consumer[T]{ctx: c, fn: fn, requester: funcName(fn)}
}

// Bind adapts fn into a component taking its leading argument, with the
// context value injected as the trailing one:
//
//	var greet = markup.Bind(letter, func(greeting, l string) markup.Node {
//	    return greeting + ": " + l
//	})
//	markup.Tag("div").Fill(greet("Hello"))
func Bind[A, T any](c *Context[T], fn func(A, T) Node) func(A) Node {
	requester := funcName(fn)
	return func(arg A) Node {
		return consumer[T]{ctx: c, requester: requester, fn: func(v T) Node { return fn(arg, v) }}
	}
}

// Consume2 is Consumer for two contexts. Values are passed in the order the
// contexts are given.
func Consume2[A, B any](a *Context[A], b *Context[B], fn func(A, B) Node) Node {
	requester := funcName(fn)
	return consumer[A]{ctx: a, requester: requester, fn: func(av A) Node {
		return consumer[B]{ctx: b, requester: requester, fn: func(bv B) Node { return fn(av, bv) }}
	}}
}

func (c *Context[T]) lookup(s *scope, requester string) (T, error) {
	if v, ok := s.lookup(c); ok {
		if v == nil {
			var zero T
			return zero, nil
		}
		return v.(T), nil
	}
	if c.hasDefault {
		return c.def, nil
	}
	var zero T
	return zero, &LookupError{Context: c.name, Requester: requester}
}

// scope is an immutable chain of provided values. Each traversal frame holds
// the scope it was created in, so bindings end with the subtree that
// introduced them.
type scope struct {
	parent *scope
	key    any
	value  any
}

func (s *scope) with(key, value any) *scope {
	return &scope{parent: s, key: key, value: value}
}

func (s *scope) lookup(key any) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.key == key {
			return cur.value, true
		}
	}
	return nil, false
}

// scoped nodes need the active scope to resolve.
type scoped interface {
	resolve(s *scope) (Node, *scope, error)
}

type provider[T any] struct {
	ctx   *Context[T]
	value T
	thunk func() Node
}

func (p provider[T]) resolve(s *scope) (Node, *scope, error) {
	inner := s.with(p.ctx, p.value)
	if p.thunk == nil {
		return nil, inner, nil
	}
	return p.thunk(), inner, nil
}

type consumer[T any] struct {
	ctx       *Context[T]
	fn        func(T) Node
	requester string
}

func (c consumer[T]) resolve(s *scope) (Node, *scope, error) {
	v, err := c.ctx.lookup(s, c.requester)
	if err != nil {
		return nil, s, err
	}
	return c.fn(v), s, nil
}

// funcName returns a short package-qualified name for fn.
func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return "<nil>"
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return "<unknown>"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
