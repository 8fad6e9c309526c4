package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/hyper/pkg/markup"
)

var (
	div = markup.Tag("div")
	ul  = markup.Tag("ul")
	li  = markup.Tag("li")
)

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node markup.Node
		want string
	}{
		{"text", "Hello, World!", "Hello, World!"},
		{"escaped", "<script>alert('xss')</script>", "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;"},
		{"element", div.With(".container").Fill(li.Fill("a")), `<div class="container"><li>a</li></div>`},
		{"nil", nil, ""},
	}

	for _, async := range []bool{false, true} {
		renderer := NewRenderer(RendererConfig{Async: async})
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := renderer.RenderToString(context.Background(), tt.node)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("async=%v: got %q, want %q", async, got, tt.want)
				}
			})
		}
	}
}

func TestRenderAsyncChildren(t *testing.T) {
	ch := make(chan markup.Node, 2)
	ch <- li.Fill("a")
	ch <- li.Fill("b")
	close(ch)

	renderer := NewRenderer(RendererConfig{Async: true})
	got, err := renderer.RenderToString(context.Background(), ul.Fill((<-chan markup.Node)(ch)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "<ul><li>a</li><li>b</li></ul>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderSyncRejectsAsyncChildren(t *testing.T) {
	ch := make(chan markup.Node)
	close(ch)

	_, err := RenderToString(context.Background(), ul.Fill((<-chan markup.Node)(ch)))
	var invalid *markup.InvalidChildError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidChildError, got %v", err)
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, async := range []bool{false, true} {
		renderer := NewRenderer(RendererConfig{Async: async})
		_, err := renderer.RenderToString(ctx, div.Fill("x"))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("async=%v: expected context.Canceled, got %v", async, err)
		}
	}
}

func TestRenderToWriterKeepsPartialOutput(t *testing.T) {
	var buf strings.Builder
	renderer := NewRenderer(RendererConfig{})

	err := renderer.RenderToWriter(context.Background(), &buf, div.Fill("ok", 3.5))
	if err == nil {
		t.Fatal("expected error for float child")
	}
	if got := buf.String(); got != "<div>ok" {
		t.Errorf("partial output = %q, want %q", got, "<div>ok")
	}
}

func TestRenderToWriterFlushes(t *testing.T) {
	items := make([]markup.Node, 10)
	for i := range items {
		items[i] = li.Fill(i)
	}

	tests := []struct {
		every int
		want  int
	}{
		{0, 1},
		{5, 7},
		{1000, 1},
	}
	for _, tt := range tests {
		fw := &FlushableWriter{}
		renderer := NewRenderer(RendererConfig{FlushEvery: tt.every})
		if err := renderer.RenderToWriter(context.Background(), fw, ul.Fill(items...)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// <ul> + 10*(<li>, text, </li>) + </ul> = 32 fragments
		if fw.FlushCount != tt.want {
			t.Errorf("FlushEvery=%d: FlushCount = %d, want %d", tt.every, fw.FlushCount, tt.want)
		}
	}
}
