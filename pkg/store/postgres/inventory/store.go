package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tienda-tools/informe/pkg/models/store"
)

// Store reads inventory items with their full movement history. Movements are
// loaded in bulk up front so the weekly aggregator never issues per-item
// queries.
type Store interface {
	ListItems(ctx context.Context) ([]store.InventoryItem, error)
}

type inventoryStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &inventoryStore{db: db}, nil
}

func (s *inventoryStore) ListItems(ctx context.Context) ([]store.InventoryItem, error) {
	query := `SELECT id, nombre FROM insumos ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var ids []int64
	byID := make(map[int64]*store.InventoryItem)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		ids = append(ids, id)
		byID[id] = &store.InventoryItem{Name: name}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	inbound, err := s.listMovements(ctx, "entradas")
	if err != nil {
		return nil, err
	}
	outbound, err := s.listMovements(ctx, "salidas")
	if err != nil {
		return nil, err
	}

	items := make([]store.InventoryItem, 0, len(ids))
	for _, id := range ids {
		item := byID[id]
		item.Inbound = inbound[id]
		item.Outbound = outbound[id]
		items = append(items, *item)
	}
	return items, nil
}

func (s *inventoryStore) listMovements(ctx context.Context, table string) (map[int64][]store.Movement, error) {
	// table is one of the two fixed movement tables, never user input.
	query := fmt.Sprintf(`SELECT insumo_id, fecha, cantidad FROM %s ORDER BY fecha`, table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	movements := make(map[int64][]store.Movement)
	for rows.Next() {
		var itemID int64
		var m store.Movement
		if err := rows.Scan(&itemID, &m.Date, &m.Quantity); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		movements[itemID] = append(movements[itemID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return movements, nil
}
