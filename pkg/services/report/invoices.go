package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/tienda-tools/informe/pkg/models/domain"
	"github.com/tienda-tools/informe/pkg/models/store"
)

// ErrMalformedInvoice is returned when a stored invoice's product list cannot
// be parsed. The whole report is aborted rather than silently dropping the
// row, so totals never understate the month.
var ErrMalformedInvoice = errors.New("malformed invoice product data")

// Line is one parsed invoice line item.
type Line struct {
	Product  string  `json:"producto"`
	Subtotal float64 `json:"subtotal"`
}

// Invoice is an invoice with its product list parsed into typed lines.
type Invoice struct {
	Date  time.Time
	Lines []Line
	Total float64
}

// ParseInvoices turns raw invoice rows into typed invoices, validating the
// serialized product list of each row.
func ParseInvoices(rows []store.InvoiceRow) ([]Invoice, error) {
	invoices := make([]Invoice, 0, len(rows))
	for _, row := range rows {
		var lines []Line
		if err := json.Unmarshal(row.Products, &lines); err != nil {
			return nil, fmt.Errorf("%w: invoice dated %s: %v",
				ErrMalformedInvoice, row.Date.Format("2006-01-02"), err)
		}
		invoices = append(invoices, Invoice{Date: row.Date, Lines: lines, Total: row.Total})
	}
	return invoices, nil
}

// TotalSales sums the invoice totals. Zero for an empty month.
func TotalSales(invoices []Invoice) float64 {
	var total float64
	for _, inv := range invoices {
		total += inv.Total
	}
	return total
}

// SalesByProduct sums each product's subtotals across every invoice line.
func SalesByProduct(invoices []Invoice) map[string]float64 {
	sales := make(map[string]float64)
	for _, inv := range invoices {
		for _, line := range inv.Lines {
			sales[line.Product] += line.Subtotal
		}
	}
	return sales
}

// TopProducts ranks products by summed revenue, descending, and keeps the
// first `limit` entries. Ties keep first-encountered order, so ranking is
// deterministic for a given invoice ordering.
func TopProducts(invoices []Invoice, limit int) []domain.ProductRevenue {
	sales := make(map[string]float64)
	var order []string
	for _, inv := range invoices {
		for _, line := range inv.Lines {
			if _, seen := sales[line.Product]; !seen {
				order = append(order, line.Product)
			}
			sales[line.Product] += line.Subtotal
		}
	}

	ranked := make([]domain.ProductRevenue, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, domain.ProductRevenue{Product: name, Revenue: sales[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
