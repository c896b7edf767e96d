package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager hands out database transactions. Services that must
// write a journal entry together with a subledger row (bill, payment, POS
// event) pass the same pgx.Tx to every repository call.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is safe to call after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
