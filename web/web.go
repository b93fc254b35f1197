// Package web embeds the site's templates and static assets and renders them
// through gin.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates static
var assets embed.FS

// Static returns the embedded static directory.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Templates parses the embedded templates.
func Templates(funcs template.FuncMap) (*template.Template, error) {
	sub, err := fs.Sub(assets, "templates")
	if err != nil {
		return nil, err
	}
	return parse(sub, funcs)
}

// TemplatesFromDir parses templates from disk, used for live reloading.
func TemplatesFromDir(dir string, funcs template.FuncMap) (*template.Template, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("template dir: %w", err)
	}
	return parse(os.DirFS(filepath.Clean(dir)), funcs)
}

func parse(fsys fs.FS, funcs template.FuncMap) (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Renderer is a gin HTML renderer whose template set can be swapped while
// requests are being served.
type Renderer struct {
	tmpl atomic.Pointer[template.Template]
}

// NewRenderer returns a renderer serving t.
func NewRenderer(t *template.Template) *Renderer {
	r := &Renderer{}
	r.tmpl.Store(t)
	return r
}

// Swap replaces the template set for subsequent requests.
func (r *Renderer) Swap(t *template.Template) {
	r.tmpl.Store(t)
}

// Instance implements render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	return render.HTML{Template: r.tmpl.Load(), Name: name, Data: data}
}
