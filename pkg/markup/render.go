package markup

import (
	"context"
	"io"
	"strings"
)

// Render returns the complete markup of n.
func Render(n Node) (string, error) {
	var b strings.Builder
	if err := Write(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustRender is like Render but panics on error.
func MustRender(n Node) string {
	s, err := Render(n)
	if err != nil {
		panic("markup: " + err.Error())
	}
	return s
}

// Write streams the fragments of n to w. Fragments written before an error
// stay written.
func Write(w io.Writer, n Node) error {
	it := Iter(n)
	defer it.Close()
	for it.Next() {
		if _, err := io.WriteString(w, it.Fragment()); err != nil {
			return err
		}
	}
	return it.Err()
}

// AsyncRender returns the complete markup of n using an AsyncIterator.
func AsyncRender(ctx context.Context, n Node) (string, error) {
	var b strings.Builder
	if err := AsyncWrite(ctx, &b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// AsyncWrite streams the fragments of n to w using an AsyncIterator.
func AsyncWrite(ctx context.Context, w io.Writer, n Node) error {
	it := AsyncIter(n)
	defer it.Close()
	for {
		s, err := it.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
}
