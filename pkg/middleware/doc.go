// Package middleware provides HTTP middleware for hyper servers.
//
// Both middlewares have the standard func(http.Handler) http.Handler shape,
// so they plug into chi, net/http or any other router:
//
//	r := chi.NewRouter()
//	r.Use(middleware.OTel(), middleware.Prometheus(middleware.WithNamespace("myapp")))
//
// # Prometheus Metrics
//
// Prometheus records request counts, durations and response sizes, plus
// render failures reported through Metrics.RecordRenderError:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	renderer := render.NewRenderer(render.RendererConfig{OnError: m.RecordRenderError})
//	r.Use(m.Handler)
//
// # OpenTelemetry
//
// OTel starts a server span per request on the global tracer provider and
// stores it in the request context.
//
// # Streaming
//
// The wrapped http.ResponseWriter keeps http.Flusher, so streamed pages are
// still flushed to the client through either middleware.
package middleware
