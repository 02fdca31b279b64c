package api

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/ghost-console/ghost/web"
)

// templateRenderer serves the embedded login and dashboard views through
// echo's Renderer interface.
type templateRenderer struct {
	templates *template.Template
}

func newRenderer() *templateRenderer {
	t := template.Must(template.ParseFS(web.Templates, "templates/*.html"))
	return &templateRenderer{templates: t}
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
