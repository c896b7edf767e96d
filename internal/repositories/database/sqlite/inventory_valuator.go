// Package sqlite reads the POS store database to value on-hand inventory.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

// InventoryValuator computes Σ current_quantity × product_cost over the POS inventory table.
type InventoryValuator struct {
	db *sql.DB
}

var _ portsrepo.InventoryValuator = (*InventoryValuator)(nil)

// Open connects read-only to the POS database at dbPath.
func Open(dbPath string) (*InventoryValuator, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open inventory db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping inventory db: %w", err)
	}
	return &InventoryValuator{db: db}, nil
}

// New wraps an already opened database handle.
func New(db *sql.DB) *InventoryValuator {
	return &InventoryValuator{db: db}
}

func (v *InventoryValuator) Close() error {
	return v.db.Close()
}

// OnHandValue values every location when establishmentID is empty.
// Rows with zero or negative stock are ignored.
func (v *InventoryValuator) OnHandValue(ctx context.Context, establishmentID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CAST(current_quantity AS REAL) * CAST(product_cost AS REAL)), 0)
		FROM inventory
		WHERE current_quantity > 0 AND (? = '' OR establishment_id = ?)`

	var total float64
	if err := v.db.QueryRowContext(ctx, query, establishmentID, establishmentID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("value inventory: %w", err)
	}
	return decimal.NewFromFloat(total).Round(2), nil
}
