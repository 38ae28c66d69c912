package domain

import (
	"html/template"
	"io"
)

// PageRenderer renders a named HTML page with the given data.
type PageRenderer interface {
	Render(w io.Writer, templateName string, data any) error
}

// CatalogPageData holds data for the catalog listing page.
type CatalogPageData struct {
	Title      string
	Search     string
	Sort       string
	Items      []*Item
	Total      int
	Page       int
	TotalPages int
	// Pagination is pre-rendered navigation markup.
	Pagination template.HTML
}
