package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tienda-tools/informe/pkg/models/domain"
)

func TestPresenter_Render(t *testing.T) {
	data := &domain.ReportData{
		Month:           "2024-02",
		TotalSales:      280,
		EstimatedProfit: 84,
		TopProducts: []domain.ProductRevenue{
			{Product: "Cafe", Revenue: 160},
		},
		InventoryWeeks: []domain.InventoryWeek{
			{
				Bucket: domain.WeekBucket{
					Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC),
				},
				Items: []domain.InventoryWeekItem{{Name: "Harina", Entrada: 10, Salida: 3}},
			},
		},
		SalesByWeek: []domain.WeeklySales{{Week: 1, Total: 280}},
	}

	out, err := NewPresenter().Render(data)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{summarySheet, productsSheet, salesSheet, inventorySheet},
		f.GetSheetList())

	month, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", month)

	product, err := f.GetCellValue(productsSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Cafe", product)

	item, err := f.GetCellValue(inventorySheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "Harina", item)
}

func TestPresenter_Render_EmptyMonth(t *testing.T) {
	out, err := NewPresenter().Render(&domain.ReportData{Month: "2024-03"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	total, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "0", total)
}
