package pager

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"os"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

var markup = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const separatorHint = "(separator)"

type navView struct {
	NavigationID string
	Size         Size
	ListClass    string
	Items        []itemView
}

type itemView struct {
	Role      string
	Label     string
	URL       string
	ItemClass string
	LinkClass string
	Hint      string
}

// Render returns the navigation markup for the current window. An empty
// window still renders the nav and list containers.
func (p Pager) Render() string {
	var buf bytes.Buffer
	if err := p.render(&buf); err != nil {
		// The embedded templates are fixed; an execution error is a build defect.
		panic("pager: render: " + err.Error())
	}
	return buf.String()
}

// WriteTo writes the rendered markup to w.
func (p Pager) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.Render())
	return int64(n), err
}

// Output writes the rendered markup to standard output.
func (p Pager) Output() error {
	_, err := p.WriteTo(os.Stdout)
	return err
}

// RenderHTML is Render typed for embedding into another html/template.
func (p Pager) RenderHTML() template.HTML {
	return template.HTML(p.Render())
}

func (p Pager) render(w io.Writer) error {
	return markup.ExecuteTemplate(w, "pagination.html", p.view(p.Window()))
}

func (p Pager) view(win Window) navView {
	v := navView{
		NavigationID: p.navigationID,
		Size:         p.size,
		ListClass:    "pagination",
		Items:        make([]itemView, 0, len(win)),
	}
	if p.justify != JustifyNone {
		v.ListClass += " " + string(p.justify)
	}
	for _, e := range win {
		v.Items = append(v.Items, p.itemView(e))
	}
	return v
}

func (p Pager) itemView(e Entry) itemView {
	key := "separator"
	if e.Navigable() {
		key = strconv.Itoa(e.Page)
	}
	iv := itemView{
		Role:      string(e.Role),
		Label:     e.Label,
		URL:       e.URL,
		ItemClass: "page-item page-item-" + key,
		LinkClass: "page-link page-link-" + key,
	}
	switch e.Role {
	case RolePrev, RoleNext:
		iv.ItemClass += " page-" + string(e.Role)
		iv.LinkClass += " page-link-" + string(e.Role)
		if p.screenReader {
			iv.Hint = e.Label
		}
	case RoleSeparator:
		iv.ItemClass += " disabled"
		if p.screenReader {
			iv.Hint = separatorHint
		}
	case RoleCurrent:
		iv.ItemClass += " active"
	}
	return iv
}
