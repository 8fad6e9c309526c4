package render

import (
	"html/template"

	"github.com/vango-dev/hyper/pkg/markup"
)

// HTML renders n for use in html/template. The result is marked as
// pre-escaped so the template engine does not escape it again.
func HTML(n markup.Node) (template.HTML, error) {
	s, err := markup.Render(n)
	if err != nil {
		return "", err
	}
	return template.HTML(s), nil
}

// FuncMap returns template functions for embedding nodes:
//
//	{{render .Sidebar}}
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"render": HTML,
	}
}
