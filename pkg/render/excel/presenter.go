// Package excel renders the composed report as an xlsx workbook.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tienda-tools/informe/pkg/models/domain"
)

const (
	summarySheet   = "Resumen"
	productsSheet  = "Productos"
	salesSheet     = "Ventas semanales"
	inventorySheet = "Inventario"
)

type Presenter struct{}

func NewPresenter() *Presenter {
	return &Presenter{}
}

// sheetWriter batches SetCellValue calls so each section reads as data, not
// error plumbing. The first failure sticks.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(cell string, value any) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cell, value)
}

// Render builds the workbook: summary, top products, weekly sales and the
// weekly inventory detail, one sheet each.
func (p *Presenter) Render(data *domain.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}
	summary := &sheetWriter{f: f, sheet: summarySheet}
	summary.set("A1", "Informe financiero")
	summary.set("B1", data.Month)
	summary.set("A2", "Total ventas")
	summary.set("B2", data.TotalSales)
	summary.set("A3", "Utilidad estimada")
	summary.set("B3", data.EstimatedProfit)
	if summary.err != nil {
		return nil, fmt.Errorf("write summary: %w", summary.err)
	}

	if _, err := f.NewSheet(productsSheet); err != nil {
		return nil, fmt.Errorf("create products sheet: %w", err)
	}
	products := &sheetWriter{f: f, sheet: productsSheet}
	products.set("A1", "Producto")
	products.set("B1", "Ventas")
	for i, top := range data.TopProducts {
		row := i + 2
		products.set(fmt.Sprintf("A%d", row), top.Product)
		products.set(fmt.Sprintf("B%d", row), top.Revenue)
	}
	if products.err != nil {
		return nil, fmt.Errorf("write products: %w", products.err)
	}

	if _, err := f.NewSheet(salesSheet); err != nil {
		return nil, fmt.Errorf("create sales sheet: %w", err)
	}
	sales := &sheetWriter{f: f, sheet: salesSheet}
	sales.set("A1", "Semana")
	sales.set("B1", "Total")
	for i, week := range data.SalesByWeek {
		row := i + 2
		sales.set(fmt.Sprintf("A%d", row), week.Week)
		sales.set(fmt.Sprintf("B%d", row), week.Total)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("write weekly sales: %w", sales.err)
	}

	if _, err := f.NewSheet(inventorySheet); err != nil {
		return nil, fmt.Errorf("create inventory sheet: %w", err)
	}
	inventory := &sheetWriter{f: f, sheet: inventorySheet}
	inventory.set("A1", "Semana")
	inventory.set("B1", "Inicio")
	inventory.set("C1", "Fin")
	inventory.set("D1", "Insumo")
	inventory.set("E1", "Entradas")
	inventory.set("F1", "Salidas")
	row := 2
	for i, week := range data.InventoryWeeks {
		for _, item := range week.Items {
			inventory.set(fmt.Sprintf("A%d", row), i+1)
			inventory.set(fmt.Sprintf("B%d", row), week.Bucket.Start.Format("2006-01-02"))
			inventory.set(fmt.Sprintf("C%d", row), week.Bucket.End.Format("2006-01-02"))
			inventory.set(fmt.Sprintf("D%d", row), item.Name)
			inventory.set(fmt.Sprintf("E%d", row), item.Entrada)
			inventory.set(fmt.Sprintf("F%d", row), item.Salida)
			row++
		}
	}
	if inventory.err != nil {
		return nil, fmt.Errorf("write inventory detail: %w", inventory.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
