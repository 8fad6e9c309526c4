package markup

import (
	"context"
	"io"
	"iter"
)

// Iterator pulls fragments of a Node one at a time:
//
//	it := markup.Iter(page)
//	defer it.Close()
//	for it.Next() {
//	    io.WriteString(w, it.Fragment())
//	}
//	if err := it.Err(); err != nil { … }
//
// Lazy children are evaluated only when the fragment they produce is pulled.
type Iterator struct {
	w   *walker
	cur string
}

// Iter returns a synchronous iterator over the fragments of n.
func Iter(n Node) *Iterator {
	return &Iterator{w: newWalker(n, false)}
}

// Next advances to the next fragment. It returns false at the end of the
// document or after an error.
func (it *Iterator) Next() bool {
	s, ok := it.w.next(context.Background())
	it.cur = s
	return ok
}

// Fragment returns the current fragment.
func (it *Iterator) Fragment() string { return it.cur }

// Err returns the error that stopped iteration, if any.
func (it *Iterator) Err() error { return it.w.err }

// Close abandons iteration and releases pending generators. It is safe to
// call more than once and after the iterator is exhausted.
func (it *Iterator) Close() { it.w.close() }

// AsyncIterator is the asynchronous counterpart of Iterator. Besides every
// synchronous Node it accepts AsyncFunc producers and receive channels,
// waiting on them with the context passed to Next.
type AsyncIterator struct {
	w *walker
}

// AsyncIter returns an asynchronous iterator over the fragments of n.
func AsyncIter(n Node) *AsyncIterator {
	return &AsyncIterator{w: newWalker(n, true)}
}

// Next returns the next fragment, or io.EOF at the end of the document.
func (it *AsyncIterator) Next(ctx context.Context) (string, error) {
	if !it.w.done {
		if err := ctx.Err(); err != nil {
			it.w.fail(err)
		}
	}
	s, ok := it.w.next(ctx)
	if ok {
		return s, nil
	}
	if it.w.err != nil {
		return "", it.w.err
	}
	return "", io.EOF
}

// Close abandons iteration and releases pending generators.
func (it *AsyncIterator) Close() { it.w.close() }

// Fragments returns n's fragments as a range-over-func sequence. Iteration
// stops after the first error, which is yielded with an empty fragment.
func Fragments(n Node) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		it := Iter(n)
		defer it.Close()
		for it.Next() {
			if !yield(it.Fragment(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			yield("", err)
		}
	}
}

// AsyncFragments is Fragments driven by an AsyncIterator.
func AsyncFragments(ctx context.Context, n Node) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		it := AsyncIter(n)
		defer it.Close()
		for {
			s, err := it.Next(ctx)
			if err == io.EOF {
				return
			}
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}
