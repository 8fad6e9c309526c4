package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	. "github.com/vango-dev/hyper/el"
	"github.com/vango-dev/hyper/pkg/markup"
	"github.com/vango-dev/hyper/pkg/render"
	"github.com/vango-dev/hyper/pkg/sanitize"
)

// params are the inputs shared by every demo page.
type params struct {
	Theme string
	User  string
	Rows  int
	Delay time.Duration
}

func defaultParams() params {
	return params{Theme: "light", User: "guest", Rows: 5}
}

// paramsFromRequest reads ?theme=, ?user= and ?rows= with defaults.
func paramsFromRequest(r *http.Request) params {
	p := defaultParams()
	p.Delay = 150 * time.Millisecond
	q := r.URL.Query()
	if theme := q.Get("theme"); theme == "dark" || theme == "light" {
		p.Theme = theme
	}
	if user := q.Get("user"); user != "" {
		p.User = user
	}
	if rows, err := strconv.Atoi(q.Get("rows")); err == nil && rows >= 0 && rows <= 1000 {
		p.Rows = rows
	}
	return p
}

type demo struct {
	Title string
	About string
	// Async pages contain channel or AsyncFunc children.
	Async bool
	// Fails marks pages that end in a render error on purpose.
	Fails bool
	Build func(ctx context.Context, p params) markup.Node
}

var demos = map[string]demo{
	"home":   {Title: "Home", About: "Context providers, escaping and sanitized markup", Build: homePage},
	"table":  {Title: "Table", About: "Rows produced lazily by a generator", Build: tablePage},
	"stream": {Title: "Stream", About: "Events received from a channel while rendering", Async: true, Build: streamPage},
	"broken": {Title: "Broken", About: "A consumer without a provider", Fails: true, Build: brokenPage},
}

// navOrder lists the demo pages in menu order.
var navOrder = []string{"home", "table", "stream", "broken"}

var (
	themeCtx   = markup.NewContextWithDefault("theme", "light")
	userCtx    = markup.NewContext[string]("user")
	sessionCtx = markup.NewContext[string]("session")
)

const styles = `body { font-family: system-ui, sans-serif; margin: 0 }
.nav { display: flex; gap: 1rem; padding: 1rem; background: #eee }
.nav-dark, .theme-dark { background: #222; color: #eee }
.nav-dark a { color: #9cf }
.content { padding: 1rem 2rem }
tr.odd { background: #f6f6f6 }`

var navbar = markup.Consume2(themeCtx, userCtx, func(theme, user string) Node {
	return Nav.With(Kw("class", Classes{{Name: "nav", On: true}, {Name: "nav-dark", On: theme == "dark"}})).Fill(
		Each(navOrder, func(name string) Node {
			return A.With(Kw("href", "/pages/"+name)).Fill(name)
		}),
		Span.With(".user").Fill("signed in as ", user),
	)
})

// layout wraps body in the document shell and provides the theme and user
// to everything below it.
func layout(title string, p params, body Node) Element {
	return render.Page(render.PageData{
		Title:  title + " · hyper",
		Styles: []string{styles},
		Meta:   []render.MetaTag{{Name: "generator", Content: "hyper " + version}},
		Body: themeCtx.Provider(p.Theme, func() Node {
			return userCtx.Provider(p.User, func() Node {
				return Fragment(
					navbar,
					Main.With(Kw("class", []string{"content", "theme-" + p.Theme})).Fill(H1.Fill(title), body),
				)
			})
		}),
	})
}

func homePage(_ context.Context, p params) markup.Node {
	features := []string{"Lazy children", "Context providers", "Streaming responses", "<script>escaped</script>"}

	return layout("Home", p, Fragment(
		Comment("rendered by hyper"),
		P.Fill("Hello, ", userCtx.Consumer(func(user string) Node { return Strong.Fill(user) }), "!"),
		Ul.With("#features").Fill(Each(features, func(f string) Node { return Li.Fill(f) })),
		Section.With(".ugc").Fill(
			H2.Fill("User content"),
			sanitize.UGC(`<p>Some <b>supplied</b> markup<script>alert(1)</script></p>`),
		),
		Button.With(Kw("type", "button"), Kw("disabled", p.User == "guest")).Fill("Sign out"),
	))
}

func tablePage(_ context.Context, p params) markup.Node {
	rows := func(yield func(Node) bool) {
		for i := 1; i <= p.Rows; i++ {
			row := Tr.With(Kw("class", Classes{{Name: "row", On: true}, {Name: "odd", On: i%2 == 1}})).Fill(
				Td.Fill(i),
				Td.Fill(i*i),
			)
			if !yield(row) {
				return
			}
		}
	}

	return layout("Table", p, Table.Fill(
		Thead.Fill(Tr.Fill(Th.Fill("n"), Th.Fill("n²"))),
		Tbody.Fill(rows),
	))
}

func streamPage(ctx context.Context, p params) markup.Node {
	return layout("Stream", p, Fragment(
		P.Fill("Events arrive as they are produced."),
		Ol.With("#events").Fill(events(ctx, p.Rows, p.Delay)),
		AsyncFunc(func(context.Context) (Node, error) {
			return P.With(".done").Fill("All events delivered"), nil
		}),
	))
}

// events produces n list items, one every delay, until ctx is done.
func events(ctx context.Context, n int, delay time.Duration) <-chan Node {
	ch := make(chan Node)
	go func() {
		defer close(ch)
		for i := 1; i <= n; i++ {
			if delay > 0 {
				select {
				case <-ctx.Done():
					return
				case <-time.After(delay):
				}
			}
			select {
			case ch <- Li.Fill("event ", i):
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func brokenPage(_ context.Context, p params) markup.Node {
	return layout("Broken", p, Div.Fill(
		P.Fill("This paragraph renders before the failure."),
		sessionCtx.Consumer(func(session string) Node { return Code.Fill(session) }),
	))
}

func indexPage(p params) markup.Node {
	return layout("Demo pages", p, Dl.Fill(Each(navOrder, func(name string) Node {
		d := demos[name]
		return Fragment(
			Dt.Fill(A.With(Kw("href", "/pages/"+name)).Fill(d.Title)),
			Dd.Fill(d.About),
		)
	})))
}
