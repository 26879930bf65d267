package domain

import "time"

// WeekBucket is a 7-day window inside a reporting month. End is inclusive
// (Start + 6 days). Buckets follow a fixed 7-day stride from the first day of
// the month, so the last bucket may extend past the month's final day.
type WeekBucket struct {
	Start time.Time
	End   time.Time
}

// ProductRevenue is a product with its summed revenue over the report month.
type ProductRevenue struct {
	Product string
	Revenue float64
}

// InventoryWeekItem holds one item's inbound/outbound quantities for a week.
type InventoryWeekItem struct {
	Name    string
	Entrada float64
	Salida  float64
}

// InventoryWeek is the per-item movement summary for one week bucket.
type InventoryWeek struct {
	Bucket WeekBucket
	Items  []InventoryWeekItem
}

// WeeklySales is the invoice total for one week of the month. Week is 1-based.
type WeeklySales struct {
	Week  int
	Total float64
}

// ReportData is the composed monthly report. It is built fresh per request
// and handed to the presenters; nothing here is persisted.
type ReportData struct {
	Month              string
	TotalSales         float64
	EstimatedProfit    float64
	SalesByProduct     map[string]float64
	TopProducts        []ProductRevenue
	InventoryWeeks     []InventoryWeek
	InventoryNetByWeek []float64
	SalesByWeek        []WeeklySales
}
