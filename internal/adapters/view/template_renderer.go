package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"pagewindow/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// templateRenderer implements domain.PageRenderer using embedded template files.
type templateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer returns a PageRenderer that loads templates from the embedded templates folder.
// Templates are parsed once; a parse failure is a build defect and panics.
func NewTemplateRenderer() domain.PageRenderer {
	return &templateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render executes the named template (e.g. "catalog") into w. The page is
// buffered first so a failing template never leaves a partial response.
func (r *templateRenderer) Render(w io.Writer, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, templateName+".html", data); err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
