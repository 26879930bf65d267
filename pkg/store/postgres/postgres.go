package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const facturasSchema = `
	CREATE TABLE IF NOT EXISTS facturas (
		id SERIAL PRIMARY KEY,
		fecha TIMESTAMPTZ NOT NULL,
		productos TEXT NOT NULL,
		total DOUBLE PRECISION NOT NULL
	);
`

const insumosSchema = `
	CREATE TABLE IF NOT EXISTS insumos (
		id SERIAL PRIMARY KEY,
		nombre TEXT NOT NULL
	);
`

const entradasSchema = `
	CREATE TABLE IF NOT EXISTS entradas (
		id SERIAL PRIMARY KEY,
		insumo_id INTEGER NOT NULL REFERENCES insumos (id),
		fecha TIMESTAMPTZ NOT NULL,
		cantidad DOUBLE PRECISION NOT NULL
	);
`

const salidasSchema = `
	CREATE TABLE IF NOT EXISTS salidas (
		id SERIAL PRIMARY KEY,
		insumo_id INTEGER NOT NULL REFERENCES insumos (id),
		fecha TIMESTAMPTZ NOT NULL,
		cantidad DOUBLE PRECISION NOT NULL
	);
`

var bootQueries = []string{
	facturasSchema,
	insumosSchema,
	entradasSchema,
	salidasSchema,
}

type Settings struct {
	URL string
}

// NewDB opens the report database and makes sure the schema exists.
func NewDB(ctx context.Context, settings Settings) (*sql.DB, error) {
	db, err := sql.Open("postgres", settings.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return db, nil
}
