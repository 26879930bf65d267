package store

import "time"

// InvoiceRow is an invoice as read from the facturas table. Products holds
// the serialized line-item list exactly as stored; parsing it into typed
// lines is the aggregator's job.
type InvoiceRow struct {
	Date     time.Time
	Products []byte
	Total    float64
}

// Movement is one inbound or outbound inventory transaction.
type Movement struct {
	Date     time.Time
	Quantity float64
}

// InventoryItem is an item with its full movement history eagerly loaded.
type InventoryItem struct {
	Name     string
	Inbound  []Movement
	Outbound []Movement
}
