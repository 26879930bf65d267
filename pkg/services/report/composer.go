package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tienda-tools/informe/pkg/models/domain"
	"github.com/tienda-tools/informe/pkg/models/store"
)

const profitMargin = 0.3 // fixed margin assumption, not derived from costs

const topProductLimit = 5

// InvoiceStore reads invoices whose date falls in a half-open range.
type InvoiceStore interface {
	ListBetween(ctx context.Context, start, end time.Time) ([]store.InvoiceRow, error)
}

// InventoryStore reads every inventory item with its movement history
// preloaded, so the aggregator never goes back to the database per item.
type InventoryStore interface {
	ListItems(ctx context.Context) ([]store.InventoryItem, error)
}

// Composer builds the complete monthly report for a YYYY-MM month.
type Composer interface {
	Compose(ctx context.Context, mes string) (*domain.ReportData, error)
}

type composer struct {
	invoices  InvoiceStore
	inventory InventoryStore
}

func NewComposer(invoices InvoiceStore, inventory InventoryStore) Composer {
	return &composer{invoices: invoices, inventory: inventory}
}

func (c *composer) Compose(ctx context.Context, mes string) (*domain.ReportData, error) {
	start, end, err := MonthRange(mes)
	if err != nil {
		return nil, err
	}

	rows, err := c.invoices.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	invoices, err := ParseInvoices(rows)
	if err != nil {
		return nil, err
	}

	items, err := c.inventory.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}

	salesByWeek, err := WeeklySales(invoices, mes)
	if err != nil {
		return nil, err
	}

	totalSales := TotalSales(invoices)
	inventoryWeeks := WeeklyInventory(items, start, end)

	return &domain.ReportData{
		Month:              mes,
		TotalSales:         totalSales,
		EstimatedProfit:    totalSales * profitMargin,
		SalesByProduct:     SalesByProduct(invoices),
		TopProducts:        TopProducts(invoices, topProductLimit),
		InventoryWeeks:     inventoryWeeks,
		InventoryNetByWeek: InventoryNetByWeek(inventoryWeeks),
		SalesByWeek:        salesByWeek,
	}, nil
}
