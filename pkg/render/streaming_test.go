package render

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vango-dev/hyper/pkg/markup"
)

func TestHandlerServesHTML(t *testing.T) {
	h := Handler(func(r *http.Request) markup.Node {
		return div.Fill("path ", r.URL.Path)
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/a<b>", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got, want := w.Body.String(), "<div>path /a&lt;b&gt;</div>"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestHandlerErrorBeforeFirstFlush(t *testing.T) {
	var logs bytes.Buffer
	renderer := NewRenderer(RendererConfig{Logger: slog.New(slog.NewTextHandler(&logs, nil))})
	h := renderer.Handler(func(*http.Request) markup.Node {
		return div.Fill("partial", map[string]int{"bad": 1})
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "partial") {
		t.Errorf("buffered output leaked into error response: %q", w.Body.String())
	}
	if !strings.Contains(logs.String(), "render failed") || !strings.Contains(logs.String(), "code=H004") {
		t.Errorf("log output = %q", logs.String())
	}
}

func TestHandlerErrorAfterFlush(t *testing.T) {
	var logs bytes.Buffer
	renderer := NewRenderer(RendererConfig{
		FlushEvery: 1,
		Logger:     slog.New(slog.NewTextHandler(&logs, nil)),
	})
	h := renderer.Handler(func(*http.Request) markup.Node {
		return div.Fill("partial", 1.5)
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 once committed", w.Code)
	}
	if got := w.Body.String(); got != "<div>partial" {
		t.Errorf("body = %q, want %q", got, "<div>partial")
	}
	if !w.Flushed {
		t.Error("expected recorder to be flushed")
	}
	if !strings.Contains(logs.String(), "render aborted after response started") {
		t.Errorf("log output = %q", logs.String())
	}
}

func TestHandlerKeepsContentType(t *testing.T) {
	h := Handler(func(*http.Request) markup.Node { return "x" })
	w := httptest.NewRecorder()
	w.Header().Set("Content-Type", "application/xhtml+xml")
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if ct := w.Header().Get("Content-Type"); ct != "application/xhtml+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestHandlerOnError(t *testing.T) {
	var got error
	renderer := NewRenderer(RendererConfig{
		Logger:  slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		OnError: func(_ *http.Request, err error) { got = err },
	})
	h := renderer.Handler(func(*http.Request) markup.Node {
		return markup.NewContext[int]("n").Consumer(func(int) markup.Node { return nil })
	})

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var lookup *markup.LookupError
	if !errors.As(got, &lookup) {
		t.Fatalf("OnError got %v, want LookupError", got)
	}
}
