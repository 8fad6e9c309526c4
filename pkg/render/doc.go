// Package render turns markup trees into HTTP responses and strings.
//
// The markup package produces a lazy sequence of HTML fragments. This
// package drives that sequence against real sinks:
//
//   - Renderer writes fragments to any io.Writer, flushing http.Flusher
//     writers every FlushEvery fragments
//   - Handler adapts a page function into an http.Handler
//   - HTML and FuncMap embed nodes in html/template output
//   - RenderMany renders independent trees concurrently
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(ctx, node)
//
// # Streaming
//
// Handler buffers output until the first flush. A failure before that point
// produces a 500 response; after it the response is already committed, so
// the render is abandoned and the error is logged.
//
//	r := render.NewRenderer(render.RendererConfig{FlushEvery: 64})
//	mux.Handle("/", r.Handler(func(req *http.Request) markup.Node {
//	    return render.Page(render.PageData{Title: "Home", Body: home(req)})
//	}))
//
// # Security
//
// Text children are escaped by the markup package. Only markup.SafeString,
// template.HTML and markup.HTMLer values bypass escaping, so untrusted HTML
// should go through the sanitize package first.
package render
