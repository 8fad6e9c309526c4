// This file declares the element variables of the el package.
package el

import "github.com/vango-dev/hyper/pkg/markup"

// HTML is the document root. It renders the HTML5 doctype before <html>.
var HTML = markup.Document()

// Void elements never accept children.
var (
	Area   = markup.Void("area")
	Base   = markup.Void("base")
	Br     = markup.Void("br")
	Col    = markup.Void("col")
	Embed  = markup.Void("embed")
	Hr     = markup.Void("hr")
	Img    = markup.Void("img")
	Input  = markup.Void("input")
	Link   = markup.Void("link")
	Meta   = markup.Void("meta")
	Param  = markup.Void("param")
	Source = markup.Void("source")
	Track  = markup.Void("track")
	Wbr    = markup.Void("wbr")
)

// Elements.
var (
	A          = markup.Tag("a")
	Abbr       = markup.Tag("abbr")
	Address    = markup.Tag("address")
	Article    = markup.Tag("article")
	Aside      = markup.Tag("aside")
	Audio      = markup.Tag("audio")
	B          = markup.Tag("b")
	Bdi        = markup.Tag("bdi")
	Bdo        = markup.Tag("bdo")
	Blockquote = markup.Tag("blockquote")
	Body       = markup.Tag("body")
	Button     = markup.Tag("button")
	Canvas     = markup.Tag("canvas")
	Caption    = markup.Tag("caption")
	Cite       = markup.Tag("cite")
	Code       = markup.Tag("code")
	Colgroup   = markup.Tag("colgroup")
	DataEl     = markup.Tag("data")
	Datalist   = markup.Tag("datalist")
	Dd         = markup.Tag("dd")
	Del        = markup.Tag("del")
	Details    = markup.Tag("details")
	Dfn        = markup.Tag("dfn")
	Dialog     = markup.Tag("dialog")
	Div        = markup.Tag("div")
	Dl         = markup.Tag("dl")
	Dt         = markup.Tag("dt")
	Em         = markup.Tag("em")
	Fieldset   = markup.Tag("fieldset")
	Figcaption = markup.Tag("figcaption")
	Figure     = markup.Tag("figure")
	Footer     = markup.Tag("footer")
	Form       = markup.Tag("form")
	H1         = markup.Tag("h1")
	H2         = markup.Tag("h2")
	H3         = markup.Tag("h3")
	H4         = markup.Tag("h4")
	H5         = markup.Tag("h5")
	H6         = markup.Tag("h6")
	Head       = markup.Tag("head")
	Header     = markup.Tag("header")
	Hgroup     = markup.Tag("hgroup")
	I          = markup.Tag("i")
	Iframe     = markup.Tag("iframe")
	Ins        = markup.Tag("ins")
	Kbd        = markup.Tag("kbd")
	Label      = markup.Tag("label")
	Legend     = markup.Tag("legend")
	Li         = markup.Tag("li")
	Main       = markup.Tag("main")
	MapEl      = markup.Tag("map")
	Mark       = markup.Tag("mark")
	Menu       = markup.Tag("menu")
	Meter      = markup.Tag("meter")
	Nav        = markup.Tag("nav")
	Noscript   = markup.Tag("noscript")
	Object     = markup.Tag("object")
	Ol         = markup.Tag("ol")
	Optgroup   = markup.Tag("optgroup")
	Option     = markup.Tag("option")
	Output     = markup.Tag("output")
	P          = markup.Tag("p")
	Picture    = markup.Tag("picture")
	Pre        = markup.Tag("pre")
	Progress   = markup.Tag("progress")
	Q          = markup.Tag("q")
	Rp         = markup.Tag("rp")
	Rt         = markup.Tag("rt")
	Ruby       = markup.Tag("ruby")
	S          = markup.Tag("s")
	Samp       = markup.Tag("samp")
	Script     = markup.Tag("script")
	Search     = markup.Tag("search")
	Section    = markup.Tag("section")
	Select     = markup.Tag("select")
	Slot       = markup.Tag("slot")
	Small      = markup.Tag("small")
	Span       = markup.Tag("span")
	Strong     = markup.Tag("strong")
	Style      = markup.Tag("style")
	Sub        = markup.Tag("sub")
	Summary    = markup.Tag("summary")
	Sup        = markup.Tag("sup")
	Table      = markup.Tag("table")
	Tbody      = markup.Tag("tbody")
	Td         = markup.Tag("td")
	TemplateEl = markup.Tag("template")
	Textarea   = markup.Tag("textarea")
	Tfoot      = markup.Tag("tfoot")
	Th         = markup.Tag("th")
	Thead      = markup.Tag("thead")
	Time       = markup.Tag("time")
	Title      = markup.Tag("title")
	Tr         = markup.Tag("tr")
	U          = markup.Tag("u")
	Ul         = markup.Tag("ul")
	Var        = markup.Tag("var")
	Video      = markup.Tag("video")
)
