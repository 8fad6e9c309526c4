// Package markup builds HTML from composable element values.
//
// Elements are immutable. Configuring one with attributes or filling it with
// children returns a new value, so a configured element can be shared and
// reused freely:
//
//	card := markup.Tag("div").With(".card")
//	page := card.Fill(
//	    markup.Tag("h1").Fill("Title"),
//	    markup.Tag("p").With(markup.Kw("data_id", 42)).Fill("<escaped>"),
//	)
//	html, err := markup.Render(page)
//
// # Nodes
//
// Anything that can become markup is a Node: nil and booleans (ignored),
// strings (escaped), SafeString and other pre-escaped values, integers,
// elements, zero-argument functions returning a Node, slices and arrays of
// Nodes and iter.Seq generators. Functions and generators are evaluated
// lazily, only when the fragment they produce is pulled.
//
// # Iteration
//
// Render collects the whole document. Iter and Fragments produce it one
// fragment at a time; AsyncIter does the same but can also wait on channels
// and AsyncFunc producers, honoring context cancellation.
//
// # Context
//
// A Context passes ambient values to deeply nested lazy producers without
// threading parameters through every component:
//
//	var theme = markup.NewContextWithDefault("theme", "light")
//
//	func button(label string) markup.Node {
//	    return theme.Consumer(func(t string) markup.Node {
//	        return markup.Tag("button").With(markup.Kw("class_", "btn-"+t)).Fill(label)
//	    })
//	}
//
//	page := theme.Provider("dark", func() markup.Node { return button("OK") })
//
// Values are resolved while the tree is flattened, so the nearest enclosing
// Provider at render time wins.
package markup
