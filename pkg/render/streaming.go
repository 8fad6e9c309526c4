package render

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vango-dev/hyper/pkg/markup"
)

// PageFunc builds the tree for a request.
type PageFunc func(*http.Request) markup.Node

// Handler serves the tree returned by page as text/html.
func (r *Renderer) Handler(page PageFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sw := &streamWriter{w: w}
		err := r.RenderToWriter(req.Context(), sw, page(req))
		if err == nil {
			return
		}

		attrs := []any{
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		}
		var coded interface{ Code() string }
		if errors.As(err, &coded) {
			attrs = append(attrs, slog.String("code", coded.Code()))
		}

		if errors.Is(err, context.Canceled) {
			r.logger.Debug("render canceled", attrs...)
			return
		}
		if r.config.OnError != nil {
			r.config.OnError(req, err)
		}
		if sw.committed {
			r.logger.Error("render aborted after response started", attrs...)
			return
		}
		r.logger.Error("render failed", attrs...)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	})
}

// Handler serves page with a default synchronous Renderer.
func Handler(page PageFunc) http.Handler {
	return defaultRenderer.Handler(page)
}

// streamWriter buffers fragments until Flush so a failing render can still
// become an error response.
type streamWriter struct {
	w         http.ResponseWriter
	buf       bytes.Buffer
	committed bool
}

func (s *streamWriter) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Flush commits the response headers on first use, then writes buffered
// fragments through to the client.
func (s *streamWriter) Flush() {
	if !s.committed {
		h := s.w.Header()
		if h.Get("Content-Type") == "" {
			h.Set("Content-Type", "text/html; charset=utf-8")
		}
		s.w.WriteHeader(http.StatusOK)
		s.committed = true
	}
	if s.buf.Len() > 0 {
		if _, err := s.buf.WriteTo(s.w); err != nil {
			return
		}
	}
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
}

// FlushableWriter wraps an io.Writer and counts flushes.
// It is useful for testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	bytes.Buffer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
