// Package el provides the element DSL for hyper.
//
// It exposes one variable per HTML element, built on the constructors in
// github.com/vango-dev/hyper/pkg/markup, plus re-exports of the common
// helpers so templates read naturally with a dot import:
//
//	import . "github.com/vango-dev/hyper/el"
//
//	page := HTML.With(Kw("lang", "en")).Fill(
//	    Body.Fill(
//	        Ul.With("#menu.nav").Fill(Li.Fill("a"), Li.Fill("b")),
//	    ),
//	)
//
// Element variables are immutable values; configuring or filling them
// returns new elements and never changes the shared variable.
package el
