// This file re-exports helper functions from the markup package for the el package.
package el

import "github.com/vango-dev/hyper/pkg/markup"

// Kw builds a keyword attribute. Trailing underscores are dropped and inner
// underscores become dashes, so Kw("class_", ...) and Kw("data_id", ...)
// produce class and data-id.
func Kw(name string, value any) Attr { return markup.Kw(name, value) }

// Raw marks s as safe markup.
func Raw(s string) SafeString { return markup.Raw(s) }

// Comment renders an HTML comment.
func Comment(text string) SafeString { return markup.Comment(text) }

func Fragment(children ...Node) Node { return markup.Fragment(children...) }

func If(cond bool, n Node) Node { return markup.If(cond, n) }

// Each maps items to nodes lazily during iteration.
func Each[T any](items []T, fn func(T) Node) Node { return markup.Map(items, fn) }

// Custom returns an element for a name outside the registered vocabulary,
// such as a custom element. Underscores become dashes.
func Custom(name string) Element { return markup.Tag(name) }

// Render renders n to a string.
func Render(n Node) (string, error) { return markup.Render(n) }
