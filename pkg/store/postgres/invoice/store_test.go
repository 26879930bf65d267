package invoice

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceStore_ListBetween(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	listQuery := regexp.QuoteMeta(`
		SELECT fecha, productos, total
		FROM facturas
		WHERE fecha >= $1 AND fecha < $2
		ORDER BY fecha
	`)

	t.Run("rows in range", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(listQuery).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows([]string{"fecha", "productos", "total"}).
				AddRow(start.AddDate(0, 0, 1), []byte(`[{"producto":"Cafe","subtotal":10}]`), 10.0).
				AddRow(start.AddDate(0, 0, 15), []byte(`[]`), 0.0))

		s, err := NewStore(db)
		require.NoError(t, err)

		rows, err := s.ListBetween(ctx, start, end)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 10.0, rows[0].Total)
		assert.JSONEq(t, `[{"producto":"Cafe","subtotal":10}]`, string(rows[0].Products))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty range is not an error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(listQuery).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows([]string{"fecha", "productos", "total"}))

		s, err := NewStore(db)
		require.NoError(t, err)

		rows, err := s.ListBetween(ctx, start, end)
		require.NoError(t, err)
		assert.Empty(t, rows)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure propagates", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(listQuery).
			WithArgs(start, end).
			WillReturnError(fmt.Errorf("connection reset"))

		s, err := NewStore(db)
		require.NoError(t, err)

		_, err = s.ListBetween(ctx, start, end)
		assert.ErrorContains(t, err, "query invoices")
	})

	t.Run("nil db rejected", func(t *testing.T) {
		_, err := NewStore(nil)
		assert.Error(t, err)
	})
}
