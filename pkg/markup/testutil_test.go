package markup

import (
	"context"
	"testing"
)

// renderBoth renders n synchronously and asynchronously and fails the test
// if the two modes disagree.
func renderBoth(t *testing.T, n Node) string {
	t.Helper()
	syncOut, syncErr := Render(n)
	asyncOut, asyncErr := AsyncRender(context.Background(), n)
	if (syncErr == nil) != (asyncErr == nil) {
		t.Fatalf("sync error %v, async error %v", syncErr, asyncErr)
	}
	if syncErr != nil {
		t.Fatalf("unexpected error: %v", syncErr)
	}
	if syncOut != asyncOut {
		t.Fatalf("sync output %q differs from async output %q", syncOut, asyncOut)
	}
	return syncOut
}

// collect returns every fragment of n from the synchronous iterator.
func collect(t *testing.T, n Node) []string {
	t.Helper()
	var out []string
	for s, err := range Fragments(n) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, s)
	}
	return out
}

var (
	div    = Tag("div")
	ul     = Tag("ul")
	li     = Tag("li")
	button = Tag("button")
	img    = Void("img")
)
