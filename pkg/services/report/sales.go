package report

import (
	"github.com/tienda-tools/informe/pkg/models/domain"
)

// WeeklySales buckets invoice totals into the month's 7-day windows. The
// windows are recomputed from the month string so they line up exactly with
// the inventory aggregator's buckets. An empty invoice table yields an empty
// series, not an error.
func WeeklySales(invoices []Invoice, mes string) ([]domain.WeeklySales, error) {
	if len(invoices) == 0 {
		return []domain.WeeklySales{}, nil
	}
	start, end, err := MonthRange(mes)
	if err != nil {
		return nil, err
	}

	buckets := Weeks(start, end)
	weeks := make([]domain.WeeklySales, 0, len(buckets))
	for i, bucket := range buckets {
		windowEnd := bucket.Start.AddDate(0, 0, 7)
		var total float64
		for _, inv := range invoices {
			if !inv.Date.Before(bucket.Start) && inv.Date.Before(windowEnd) {
				total += inv.Total
			}
		}
		weeks = append(weeks, domain.WeeklySales{Week: i + 1, Total: total})
	}
	return weeks, nil
}
