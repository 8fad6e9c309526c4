package render

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func renderPage(t *testing.T, page PageData) string {
	t.Helper()
	out, err := RenderToString(context.Background(), Page(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

// findAll returns every element under n with the given atom.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for c := range n.Descendants() {
		if c.Type == html.ElementNode && c.DataAtom == a {
			out = append(out, c)
		}
	}
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func TestPageDefaults(t *testing.T) {
	out := renderPage(t, PageData{Title: "Home & Away", Body: div.Fill("hi")})

	if !strings.HasPrefix(out, `<!doctype html><html lang="en"><head><meta charset="utf-8">`) {
		t.Errorf("unexpected prefix: %q", out)
	}
	if !strings.Contains(out, "<title>Home &amp; Away</title>") {
		t.Errorf("title not escaped: %q", out)
	}
	if !strings.HasSuffix(out, "<body><div>hi</div></body></html>") {
		t.Errorf("unexpected suffix: %q", out)
	}
}

func TestPageHead(t *testing.T) {
	out := renderPage(t, PageData{
		Lang:        "fr",
		Meta:        []MetaTag{{Name: "description", Content: `a "quoted" page`}, {Property: "og:title", Content: "T"}},
		Links:       []LinkTag{{Rel: "icon", Href: "/favicon.ico"}},
		StyleSheets: []string{"/app.css"},
		Styles:      []string{"body > div { color: red }"},
		Scripts: []ScriptTag{
			{Src: "/app.js", Module: true, Defer: true},
			{Inline: "console.log(1 < 2)"},
		},
		Body: "content",
	})

	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}

	htmlEl := findAll(doc, atom.Html)[0]
	if lang, _ := attr(htmlEl, "lang"); lang != "fr" {
		t.Errorf("lang = %q, want fr", lang)
	}

	var metas []string
	for _, m := range findAll(doc, atom.Meta) {
		v, _ := attr(m, "content")
		metas = append(metas, v)
	}
	if diff := cmp.Diff([]string{"", "width=device-width, initial-scale=1", `a "quoted" page`, "T"}, metas); diff != "" {
		t.Errorf("meta content mismatch (-want +got):\n%s", diff)
	}
	if _, ok := attr(findAll(doc, atom.Meta)[2], "property"); ok {
		t.Error("empty property attribute should be omitted")
	}

	links := findAll(doc, atom.Link)
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if href, _ := attr(links[1], "href"); href != "/app.css" {
		t.Errorf("stylesheet href = %q", href)
	}

	if !strings.Contains(out, "<style>body > div { color: red }</style>") {
		t.Errorf("inline style should be raw: %q", out)
	}

	scripts := findAll(doc, atom.Script)
	if len(scripts) != 2 {
		t.Fatalf("got %d scripts, want 2", len(scripts))
	}
	if scripts[0].Parent.DataAtom != atom.Head {
		t.Error("deferred script should be in head")
	}
	if typ, _ := attr(scripts[0], "type"); typ != "module" {
		t.Errorf("script type = %q, want module", typ)
	}
	if scripts[1].Parent.DataAtom != atom.Body {
		t.Error("inline script should be at the end of body")
	}
	if got := scripts[1].FirstChild.Data; got != "console.log(1 < 2)" {
		t.Errorf("inline script = %q", got)
	}
}

func TestPageIsLazy(t *testing.T) {
	called := false
	page := Page(PageData{Body: func() any {
		called = true
		return "x"
	}})
	if called {
		t.Fatal("body rendered before iteration")
	}
	if _, err := RenderToString(context.Background(), page); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("body was never rendered")
	}
}
