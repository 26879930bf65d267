// Package pdf renders the composed report as a paginated PDF document with
// embedded chart images.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signintech/gopdf"

	"github.com/tienda-tools/informe/pkg/models/domain"
	"github.com/tienda-tools/informe/pkg/render"
	"github.com/tienda-tools/informe/pkg/render/chart"
)

const (
	fontRegular = "informe"
	fontBold    = "informe-bold"

	regularFile = "arial.ttf"
	boldFile    = "arialbd.ttf"

	pageWidth  = 595.28 // A4 portrait, points
	pageHeight = 841.89
	marginX    = 40.0
	marginTop  = 40.0

	contentWidth = pageWidth - 2*marginX
	chartHeight  = contentWidth / 2 // charts are rendered 2:1
	lineHeight   = 18.0
	bottomLimit  = pageHeight - 60
)

type Presenter struct {
	regularPath string
	boldPath    string
}

// NewPresenter locates the TTF fonts the document is drawn with. The regular
// face is required; the bold face falls back to it when missing.
func NewPresenter(fontDir string) (*Presenter, error) {
	regular := filepath.Join(fontDir, regularFile)
	if _, err := os.Stat(regular); err != nil {
		return nil, fmt.Errorf("report font %s: %w", regular, err)
	}
	bold := filepath.Join(fontDir, boldFile)
	if _, err := os.Stat(bold); err != nil {
		bold = regular
	}
	return &Presenter{regularPath: regular, boldPath: bold}, nil
}

type chartKind int

const (
	barKind chartKind = iota
	lineKind
)

type chartSpec struct {
	title  string
	kind   chartKind
	labels []string
	values []float64
}

// chartSpecs lists the charts to draw, in document order. A chart whose
// underlying series is empty is omitted entirely rather than drawn blank.
func chartSpecs(data *domain.ReportData) []chartSpec {
	var specs []chartSpec

	if len(data.TopProducts) > 0 {
		labels := make([]string, 0, len(data.TopProducts))
		values := make([]float64, 0, len(data.TopProducts))
		for _, p := range data.TopProducts {
			labels = append(labels, p.Product)
			values = append(values, p.Revenue)
		}
		specs = append(specs, chartSpec{"Ventas por tipo de producto", barKind, labels, values})
	}

	if len(data.SalesByWeek) > 0 {
		labels := make([]string, 0, len(data.SalesByWeek))
		values := make([]float64, 0, len(data.SalesByWeek))
		for _, w := range data.SalesByWeek {
			labels = append(labels, fmt.Sprintf("Semana %d", w.Week))
			values = append(values, w.Total)
		}
		specs = append(specs, chartSpec{"Ventas semana a semana", lineKind, labels, values})
	}

	if len(data.InventoryNetByWeek) > 0 {
		labels := make([]string, 0, len(data.InventoryNetByWeek))
		for i := range data.InventoryNetByWeek {
			labels = append(labels, fmt.Sprintf("Semana %d", i+1))
		}
		specs = append(specs, chartSpec{"Estado del inventario", barKind, labels, data.InventoryNetByWeek})
	}

	return specs
}

func (s chartSpec) image() ([]byte, error) {
	if s.kind == lineKind {
		return chart.Line(s.title, s.labels, s.values)
	}
	return chart.Bar(s.title, s.labels, s.values)
}

// Render produces the complete PDF: summary, charts, then the weekly
// inventory detail listing. Chart images are embedded from in-memory byte
// buffers; nothing touches the filesystem besides the fonts.
func (p *Presenter) Render(data *domain.ReportData) ([]byte, error) {
	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	doc.AddPage()

	if err := doc.AddTTFFont(fontRegular, p.regularPath); err != nil {
		return nil, fmt.Errorf("load font %s: %w", p.regularPath, err)
	}
	if err := doc.AddTTFFont(fontBold, p.boldPath); err != nil {
		return nil, fmt.Errorf("load font %s: %w", p.boldPath, err)
	}

	y := marginTop
	if err := doc.SetFont(fontBold, "", 16); err != nil {
		return nil, err
	}
	title := "Informe financiero " + data.Month
	titleWidth, err := doc.MeasureTextWidth(title)
	if err != nil {
		return nil, fmt.Errorf("measure title: %w", err)
	}
	if err := text(doc, (pageWidth-titleWidth)/2, y, title); err != nil {
		return nil, err
	}
	y += 30

	if err := doc.SetFont(fontRegular, "", 12); err != nil {
		return nil, err
	}
	if err := text(doc, marginX, y, "Total ventas: "+render.FormatMoney(data.TotalSales)); err != nil {
		return nil, err
	}
	y += lineHeight
	if err := text(doc, marginX, y, "Utilidad estimada: "+render.FormatMoney(data.EstimatedProfit)); err != nil {
		return nil, err
	}
	y += lineHeight + 10

	for _, spec := range chartSpecs(data) {
		img, err := spec.image()
		if err != nil {
			return nil, err
		}
		holder, err := gopdf.ImageHolderByBytes(img)
		if err != nil {
			return nil, fmt.Errorf("embed chart %q: %w", spec.title, err)
		}
		if y+chartHeight > bottomLimit {
			doc.AddPage()
			y = marginTop
		}
		if err := doc.ImageByHolder(holder, marginX, y, &gopdf.Rect{W: contentWidth, H: chartHeight}); err != nil {
			return nil, fmt.Errorf("place chart %q: %w", spec.title, err)
		}
		y += chartHeight + 15
	}

	if _, err := p.detail(doc, data, y); err != nil {
		return nil, err
	}

	out, err := doc.GetBytesPdfReturnErr()
	if err != nil {
		return nil, fmt.Errorf("serialize pdf: %w", err)
	}
	return out, nil
}

func (p *Presenter) detail(doc *gopdf.GoPdf, data *domain.ReportData, y float64) (float64, error) {
	writeLine := func(font string, size int, s string) error {
		if y+lineHeight > bottomLimit {
			doc.AddPage()
			y = marginTop
		}
		if err := doc.SetFont(font, "", size); err != nil {
			return err
		}
		if err := text(doc, marginX, y, s); err != nil {
			return err
		}
		y += lineHeight
		return nil
	}

	if err := writeLine(fontBold, 12, "Detalle de inventario"); err != nil {
		return y, err
	}

	for i, week := range data.InventoryWeeks {
		header := fmt.Sprintf("Semana %d (%s - %s)", i+1,
			week.Bucket.Start.Format("2006-01-02"),
			week.Bucket.End.Format("2006-01-02"))
		if err := writeLine(fontRegular, 11, header); err != nil {
			return y, err
		}
		for _, item := range week.Items {
			line := fmt.Sprintf("  - %s: entradas %s / salidas %s",
				item.Name, render.FormatQuantity(item.Entrada), render.FormatQuantity(item.Salida))
			if err := writeLine(fontRegular, 11, line); err != nil {
				return y, err
			}
		}
		y += 4
	}
	return y, nil
}

func text(doc *gopdf.GoPdf, x, y float64, s string) error {
	doc.SetX(x)
	doc.SetY(y)
	if err := doc.Cell(nil, s); err != nil {
		return fmt.Errorf("draw text %q: %w", s, err)
	}
	return nil
}
