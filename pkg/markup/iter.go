package markup

import (
	"context"
	"html"
	"html/template"
	"iter"
	"reflect"
)

// Node is anything that can become markup. See the package documentation for
// the accepted kinds.
type Node = any

// AsyncFunc produces a Node, possibly after waiting on I/O. It is only valid
// under AsyncIter, which passes the iteration context.
type AsyncFunc func(ctx context.Context) (Node, error)

type frameKind uint8

const (
	frameText  frameKind = iota // literal fragment, e.g. a close tag
	frameNode                   // a Node still to be resolved
	frameNodes                  // []Node
	frameList                   // any other slice or array
	frameSeq                    // pulled iter.Seq
	frameChan                   // channel, async only
)

type frame struct {
	kind  frameKind
	scope *scope

	text  string
	node  Node
	nodes []Node
	list  reflect.Value
	idx   int
	next  func() (Node, bool)
	stop  func()
	ch    reflect.Value
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

const asyncHint = "asynchronous producers require AsyncIter"

// walker flattens a Node tree depth-first using an explicit frame stack. The
// same walker backs both Iterator and AsyncIterator.
type walker struct {
	stack []*frame
	async bool
	err   error
	done  bool
}

func newWalker(n Node, async bool) *walker {
	return &walker{stack: []*frame{{kind: frameNode, node: n}}, async: async}
}

func (w *walker) push(f *frame) {
	w.stack = append(w.stack, f)
}

func (w *walker) pop() {
	w.stack[len(w.stack)-1] = nil
	w.stack = w.stack[:len(w.stack)-1]
}

// next returns the next fragment. It returns false once the tree is exhausted
// or an error was recorded in w.err.
func (w *walker) next(ctx context.Context) (string, bool) {
	for !w.done && len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]

		var child Node
		switch top.kind {
		case frameText:
			w.pop()
			return top.text, true

		case frameNode:
			w.pop()
			child = top.node

		case frameNodes:
			if top.idx >= len(top.nodes) {
				w.pop()
				continue
			}
			child = top.nodes[top.idx]
			top.idx++

		case frameList:
			if top.idx >= top.list.Len() {
				w.pop()
				continue
			}
			child = top.list.Index(top.idx).Interface()
			top.idx++

		case frameSeq:
			v, ok := top.next()
			if !ok {
				top.stop()
				w.pop()
				continue
			}
			child = v

		case frameChan:
			v, ok, err := receive(ctx, top.ch)
			if err != nil {
				w.fail(err)
				return "", false
			}
			if !ok {
				w.pop()
				continue
			}
			child = v
		}

		s, emit, err := w.expand(ctx, child, top.scope)
		if err != nil {
			w.fail(err)
			return "", false
		}
		if emit {
			return s, true
		}
	}
	w.done = true
	return "", false
}

// expand resolves one child. Leaves yield a fragment directly; containers
// push frames and may yield their first fragment.
func (w *walker) expand(ctx context.Context, x Node, sc *scope) (string, bool, error) {
	x, sc, err := w.resolve(ctx, x, sc)
	if err != nil {
		return "", false, err
	}

	switch v := x.(type) {
	case nil, bool:
		return "", false, nil
	case string:
		return html.EscapeString(v), true, nil
	case SafeString:
		return string(v), true, nil
	case template.HTML:
		return string(v), true, nil
	case HTMLer:
		return string(v.HTML()), true, nil
	case Element:
		open, err := v.openTag()
		if err != nil {
			return "", false, err
		}
		w.push(&frame{kind: frameText, text: v.closeTag()})
		if v.children != nil {
			w.push(&frame{kind: frameNode, node: v.children, scope: sc})
		}
		if v.doctype {
			w.push(&frame{kind: frameText, text: open})
			return doctype, true, nil
		}
		return open, true, nil
	case VoidElement:
		open, err := v.openTag()
		if err != nil {
			return "", false, err
		}
		return open, true, nil
	case []Node:
		w.push(&frame{kind: frameNodes, nodes: v, scope: sc})
		return "", false, nil
	case iter.Seq[Node]:
		w.pushSeq(v, sc)
		return "", false, nil
	case func(func(Node) bool):
		w.pushSeq(v, sc)
		return "", false, nil
	case []byte:
		return "", false, &InvalidChildError{Value: x}
	}

	if n, ok := integerString(x); ok {
		return n, true, nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		w.push(&frame{kind: frameList, list: rv, scope: sc})
		return "", false, nil
	case reflect.Func:
		if isSeq(rv.Type()) {
			w.pushSeq(reflectSeq(rv), sc)
			return "", false, nil
		}
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir != 0 {
			if !w.async {
				return "", false, &InvalidChildError{Value: x, Hint: asyncHint}
			}
			w.push(&frame{kind: frameChan, ch: rv, scope: sc})
			return "", false, nil
		}
	}
	return "", false, &InvalidChildError{Value: x}
}

// resolve invokes callables, providers and consumers until x is a plain value.
func (w *walker) resolve(ctx context.Context, x Node, sc *scope) (Node, *scope, error) {
	for {
		var err error
		switch v := x.(type) {
		case nil, Element, VoidElement, string, SafeString:
			return x, sc, nil
		case scoped:
			if x, sc, err = v.resolve(sc); err != nil {
				return nil, sc, err
			}
			continue
		case func() Node:
			if v == nil {
				return nil, sc, nil
			}
			x = v()
			continue
		case func() (Node, error):
			if v == nil {
				return nil, sc, nil
			}
			if x, err = v(); err != nil {
				return nil, sc, err
			}
			continue
		case AsyncFunc:
			if x, err = w.await(ctx, v); err != nil {
				return nil, sc, err
			}
			continue
		case func(context.Context) (Node, error):
			if x, err = w.await(ctx, v); err != nil {
				return nil, sc, err
			}
			continue
		}

		rv := reflect.ValueOf(x)
		if rv.Kind() != reflect.Func || rv.Type().NumIn() != 0 {
			return x, sc, nil
		}
		if rv.IsNil() {
			return nil, sc, nil
		}
		t := rv.Type()
		switch {
		case t.NumOut() == 1:
			x = rv.Call(nil)[0].Interface()
		case t.NumOut() == 2 && t.Out(1) == errorType:
			out := rv.Call(nil)
			if e := out[1].Interface(); e != nil {
				return nil, sc, e.(error)
			}
			x = out[0].Interface()
		default:
			return nil, sc, &InvalidChildError{Value: x}
		}
	}
}

func (w *walker) await(ctx context.Context, fn func(context.Context) (Node, error)) (Node, error) {
	if !w.async {
		return nil, &InvalidChildError{Value: fn, Hint: asyncHint}
	}
	if fn == nil {
		return nil, nil
	}
	return fn(ctx)
}

func (w *walker) pushSeq(seq func(func(Node) bool), sc *scope) {
	next, stop := iter.Pull(iter.Seq[Node](seq))
	w.push(&frame{kind: frameSeq, next: next, stop: stop, scope: sc})
}

// fail records err and releases pending generators.
func (w *walker) fail(err error) {
	w.err = err
	w.close()
}

func (w *walker) close() {
	for _, f := range w.stack {
		if f != nil && f.kind == frameSeq {
			f.stop()
		}
	}
	w.stack = nil
	w.done = true
}

// isSeq matches func(yield func(T) bool), the shape of iter.Seq[T].
func isSeq(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && y.NumIn() == 1 && y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

// reflectSeq adapts an iter.Seq of any element type to iter.Seq[Node].
func reflectSeq(seq reflect.Value) func(func(Node) bool) {
	yieldType := seq.Type().In(0)
	return func(yield func(Node) bool) {
		fn := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(args[0].Interface()))}
		})
		seq.Call([]reflect.Value{fn})
	}
}

// receive waits for the next channel value or ctx cancellation.
func receive(ctx context.Context, ch reflect.Value) (Node, bool, error) {
	if c, ok := ch.Interface().(<-chan Node); ok {
		select {
		case v, ok := <-c:
			return v, ok, nil
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}
	if c, ok := ch.Interface().(chan Node); ok {
		select {
		case v, ok := <-c:
			return v, ok, nil
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}
	chosen, v, ok := reflect.Select([]reflect.SelectCase{
		{Dir: reflect.SelectRecv, Chan: ch},
		{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())},
	})
	if chosen == 1 {
		return nil, false, ctx.Err()
	}
	if !ok {
		return nil, false, nil
	}
	return v.Interface(), true, nil
}
