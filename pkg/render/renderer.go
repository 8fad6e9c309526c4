package render

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vango-dev/hyper/pkg/markup"
)

// RendererConfig configures a Renderer.
type RendererConfig struct {
	// Async drives the tree with an AsyncIterator, which allows channel and
	// markup.AsyncFunc children.
	Async bool

	// FlushEvery flushes http.Flusher writers after this many fragments.
	// Zero flushes only once the render completes.
	FlushEvery int

	// Logger receives render failures from handlers.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// OnError is called by handlers for every failed render, after logging.
	OnError func(*http.Request, error)
}

// Renderer renders markup trees. A Renderer holds no per-render state and is
// safe for concurrent use.
type Renderer struct {
	config RendererConfig
	logger *slog.Logger
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.FlushEvery < 0 {
		config.FlushEvery = 0
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{config: config, logger: logger}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// RenderToString renders n to a complete HTML string.
func (r *Renderer) RenderToString(ctx context.Context, n markup.Node) (string, error) {
	var b strings.Builder
	if err := r.RenderToWriter(ctx, &b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderToWriter streams n to w. Fragments written before an error stay
// written. If w implements http.Flusher it is flushed every FlushEvery
// fragments and once more after the last one.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, n markup.Node) error {
	flusher, _ := w.(http.Flusher)
	count := 0
	for frag, err := range r.fragments(ctx, n) {
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, frag); err != nil {
			return fmt.Errorf("render: write: %w", err)
		}
		count++
		if flusher != nil && r.config.FlushEvery > 0 && count%r.config.FlushEvery == 0 {
			flusher.Flush()
		}
	}
	if flusher != nil {
		flusher.Flush()
	}
	return nil
}

func (r *Renderer) fragments(ctx context.Context, n markup.Node) iter.Seq2[string, error] {
	if r.config.Async {
		return markup.AsyncFragments(ctx, n)
	}
	return func(yield func(string, error) bool) {
		for frag, err := range markup.Fragments(n) {
			if err == nil {
				if cerr := ctx.Err(); cerr != nil {
					yield("", cerr)
					return
				}
			}
			if !yield(frag, err) {
				return
			}
		}
	}
}

var defaultRenderer = NewRenderer(RendererConfig{})

// RenderToString renders n with a default synchronous Renderer.
func RenderToString(ctx context.Context, n markup.Node) (string, error) {
	return defaultRenderer.RenderToString(ctx, n)
}
