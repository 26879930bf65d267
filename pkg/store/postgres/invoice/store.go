package invoice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tienda-tools/informe/pkg/models/store"
)

// Store reads invoices for report aggregation.
type Store interface {
	ListBetween(ctx context.Context, start, end time.Time) ([]store.InvoiceRow, error)
}

type invoiceStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &invoiceStore{db: db}, nil
}

func (s *invoiceStore) ListBetween(ctx context.Context, start, end time.Time) ([]store.InvoiceRow, error) {
	query := `
		SELECT fecha, productos, total
		FROM facturas
		WHERE fecha >= $1 AND fecha < $2
		ORDER BY fecha
	`
	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]store.InvoiceRow, 0)
	for rows.Next() {
		var row store.InvoiceRow
		if err := rows.Scan(&row.Date, &row.Products, &row.Total); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}
	return invoices, nil
}
