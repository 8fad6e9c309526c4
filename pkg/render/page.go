package render

import (
	"github.com/vango-dev/hyper/pkg/markup"
)

// PageData contains all data needed to build a complete HTML document.
type PageData struct {
	// Body is the content of the <body> element
	Body markup.Node

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// Links contains link tags (favicon, preload, etc.)
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS. It is trusted and emitted unescaped.
	Styles []string

	// Scripts contains script tags. Deferred and async scripts go in the
	// head, the rest at the end of the body.
	Scripts []ScriptTag

	// Head holds extra nodes appended to <head>
	Head []markup.Node

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content, trusted
}

var (
	htmlHead   = markup.Tag("head")
	htmlBody   = markup.Tag("body")
	htmlTitle  = markup.Tag("title")
	htmlStyle  = markup.Tag("style")
	htmlScript = markup.Tag("script")
	htmlMeta   = markup.Void("meta")
	htmlLink   = markup.Void("link")
)

// Page builds a complete HTML document from page. Nothing is rendered until
// the returned element is iterated.
func Page(page PageData) markup.Element {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := []markup.Node{
		htmlMeta.With(markup.Kw("charset", "utf-8")),
		htmlMeta.With(markup.Kw("name", "viewport"), markup.Kw("content", "width=device-width, initial-scale=1")),
	}
	if page.Title != "" {
		head = append(head, htmlTitle.Fill(page.Title))
	}
	for _, meta := range page.Meta {
		head = append(head, metaTag(meta))
	}
	for _, link := range page.Links {
		head = append(head, linkTag(link))
	}
	for _, href := range page.StyleSheets {
		head = append(head, htmlLink.With(markup.Kw("rel", "stylesheet"), markup.Kw("href", href)))
	}
	for _, style := range page.Styles {
		head = append(head, htmlStyle.Fill(markup.Raw(style)))
	}

	var tail []markup.Node
	for _, script := range page.Scripts {
		if script.Defer || script.Async {
			head = append(head, scriptTag(script))
		} else {
			tail = append(tail, scriptTag(script))
		}
	}
	head = append(head, page.Head...)

	return markup.Document().With(markup.Kw("lang", lang)).Fill(
		htmlHead.Fill(head...),
		htmlBody.Fill(page.Body, markup.Fragment(tail...)),
	)
}

// optional drops empty attribute values.
func optional(key, value string) markup.Attr {
	if value == "" {
		return markup.Attr{Key: key}
	}
	return markup.Attr{Key: key, Value: value}
}

func metaTag(meta MetaTag) markup.VoidElement {
	return htmlMeta.With(
		optional("charset", meta.Charset),
		optional("name", meta.Name),
		optional("property", meta.Property),
		optional("http-equiv", meta.HTTPEquiv),
		optional("content", meta.Content),
	)
}

func linkTag(link LinkTag) markup.VoidElement {
	return htmlLink.With(
		optional("rel", link.Rel),
		optional("href", link.Href),
		optional("type", link.Type),
		optional("sizes", link.Sizes),
		optional("crossorigin", link.CrossOrigin),
		optional("media", link.Media),
	)
}

func scriptTag(script ScriptTag) markup.Element {
	typ := script.Type
	if script.Module {
		typ = "module"
	}
	el := htmlScript.With(
		optional("src", script.Src),
		optional("type", typ),
		markup.Kw("defer", script.Defer),
		markup.Kw("async", script.Async),
	)
	if script.Inline != "" {
		return el.Fill(markup.Raw(script.Inline))
	}
	return el
}
