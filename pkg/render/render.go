package render

import (
	"fmt"
	"html/template"
	"io/fs"
	"strings"
)

// Renderer produces a body from a template path and a parameter map.
// An unknown path or a reference to a parameter that was not supplied
// is a hard failure.
type Renderer interface {
	Render(path string, params map[string]interface{}) (string, error)
}

// htmlRenderer implements Renderer on top of html/template
type htmlRenderer struct {
	templates *template.Template
}

// NewHTMLRenderer parses every .html file in the given filesystem.
// Templates keep their full path as name (e.g. "admin/checklists.html")
// so path-prefix conventions carry through to lookup.
func NewHTMLRenderer(fsys fs.FS) (Renderer, error) {
	root := template.New("").Option("missingkey=error")

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		_, err = root.New(path).Parse(string(content))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &htmlRenderer{templates: root}, nil
}

func (r *htmlRenderer) Render(path string, params map[string]interface{}) (string, error) {
	tmpl := r.templates.Lookup(path)
	if tmpl == nil {
		return "", fmt.Errorf("template not found: %s", path)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, params); err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	return sb.String(), nil
}
