// Package sanitize lets untrusted HTML enter a markup tree.
//
// Sanitized output is returned as markup.SafeString, so it is emitted
// without further escaping.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vango-dev/hyper/pkg/markup"
)

var (
	ugcOnce   sync.Once
	ugcPolicy *bluemonday.Policy

	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy

	iconOnce   sync.Once
	iconPolicy *bluemonday.Policy
)

// Sanitize cleans raw with a policy suited to user generated content:
// formatting, links, images and tables are kept, scripts and event
// handler attributes are removed.
func Sanitize(raw string) markup.SafeString {
	return SanitizeWith(ugc(), raw)
}

// Strict removes every tag from raw, keeping only escaped text.
func Strict(raw string) markup.SafeString {
	return SanitizeWith(strict(), raw)
}

// Icon cleans inline SVG icon markup. Only drawing elements and their
// presentation attributes survive.
func Icon(raw string) markup.SafeString {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return markup.SafeString(strings.TrimSpace(icon().Sanitize(trimmed)))
}

// SanitizeWith cleans raw with policy.
func SanitizeWith(policy *bluemonday.Policy, raw string) markup.SafeString {
	if raw == "" {
		return ""
	}
	return markup.SafeString(policy.Sanitize(raw))
}

// UGC is untrusted HTML that is sanitized when rendered.
type UGC string

// HTML implements markup.HTMLer.
func (u UGC) HTML() markup.SafeString {
	return Sanitize(string(u))
}

func ugc() *bluemonday.Policy {
	ugcOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy
}

func strict() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

func icon() *bluemonday.Policy {
	iconOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		policy.AllowAttrs("href").OnElements("use")

		policy.AllowAttrs(
			"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
			"points", "rx", "ry", "fill", "stroke", "stroke-width",
			"stroke-linecap", "stroke-linejoin", "class",
		).OnElements("path", "circle", "rect", "line", "polyline", "polygon", "ellipse")

		policy.AllowAttrs("id").OnElements("defs", "g")

		iconPolicy = policy
	})
	return iconPolicy
}
