package markup

import "strings"

// Comment returns an HTML comment. Every "--" is removed from text so the
// comment cannot be terminated early.
func Comment(text string) SafeString {
	return SafeString("<!-- " + strings.ReplaceAll(text, "--", "") + " -->")
}

// Fragment groups children without a wrapper element.
func Fragment(children ...Node) Node {
	return append([]Node(nil), children...)
}

// If returns n when cond is true and nil otherwise.
func If(cond bool, n Node) Node {
	if cond {
		return n
	}
	return nil
}

// Map lazily renders fn for each item, in order.
func Map[T any](items []T, fn func(T) Node) Node {
	return func(yield func(Node) bool) {
		for _, item := range items {
			if !yield(fn(item)) {
				return
			}
		}
	}
}
