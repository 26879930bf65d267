// Package html renders the composed report as an HTML page.
package html

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/tienda-tools/informe/pkg/models/domain"
	"github.com/tienda-tools/informe/pkg/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Presenter struct {
	tmpl *template.Template
}

func NewPresenter() (*Presenter, error) {
	tmpl, err := template.New("informe").Funcs(template.FuncMap{
		"money":    render.FormatMoney,
		"cantidad": render.FormatQuantity,
		"fecha": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"add1": func(i int) int { return i + 1 },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse report templates: %w", err)
	}
	return &Presenter{tmpl: tmpl}, nil
}

// Render writes the report page. All business values arrive precomputed in
// data; this is template substitution only.
func (p *Presenter) Render(w io.Writer, data *domain.ReportData) error {
	if err := p.tmpl.ExecuteTemplate(w, "informe.html", data); err != nil {
		return fmt.Errorf("render report page: %w", err)
	}
	return nil
}
