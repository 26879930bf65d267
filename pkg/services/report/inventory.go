package report

import (
	"time"

	"github.com/tienda-tools/informe/pkg/models/domain"
	"github.com/tienda-tools/informe/pkg/models/store"
)

// WeeklyInventory buckets each item's movement history into the month's
// 7-day windows. Every item appears in every week, with zero quantities when
// it had no movements.
func WeeklyInventory(items []store.InventoryItem, start, end time.Time) []domain.InventoryWeek {
	buckets := Weeks(start, end)
	weeks := make([]domain.InventoryWeek, 0, len(buckets))
	for _, bucket := range buckets {
		windowEnd := bucket.Start.AddDate(0, 0, 7)
		week := domain.InventoryWeek{Bucket: bucket, Items: make([]domain.InventoryWeekItem, 0, len(items))}
		for _, item := range items {
			week.Items = append(week.Items, domain.InventoryWeekItem{
				Name:    item.Name,
				Entrada: sumMovements(item.Inbound, bucket.Start, windowEnd),
				Salida:  sumMovements(item.Outbound, bucket.Start, windowEnd),
			})
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// InventoryNetByWeek reduces each week to the total entrada - salida across
// all items, index-aligned with the weekly sales series.
func InventoryNetByWeek(weeks []domain.InventoryWeek) []float64 {
	nets := make([]float64, 0, len(weeks))
	for _, week := range weeks {
		var net float64
		for _, item := range week.Items {
			net += item.Entrada - item.Salida
		}
		nets = append(nets, net)
	}
	return nets
}

func sumMovements(movements []store.Movement, start, end time.Time) float64 {
	var total float64
	for _, m := range movements {
		if !m.Date.Before(start) && m.Date.Before(end) {
			total += m.Quantity
		}
	}
	return total
}
