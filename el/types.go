// This file re-exports types from the markup package for the el package.
package el

import "github.com/vango-dev/hyper/pkg/markup"

type (
	Node        = markup.Node
	Element     = markup.Element
	VoidElement = markup.VoidElement
	Attr        = markup.Attr
	Attrs       = markup.Attrs
	ClassToggle = markup.ClassToggle
	Classes     = markup.Classes
	SafeString  = markup.SafeString
	AsyncFunc   = markup.AsyncFunc
)
