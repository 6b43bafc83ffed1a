package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoTx is returned by operations that only make sense inside RunInTx,
// such as taking a transaction-scoped owner lock.
var ErrNoTx = errors.New("no transaction in context")

// Querier runs SQL for the itinerary repository. *pgxpool.Pool, pgx.Tx and
// the pgxmock pool all satisfy it, so a repository method behaves the same
// on its own and inside RunInTx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type txKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFrom(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFromCtx returns the transaction RunInTx put into ctx, or fallback
// when the call is not part of one. It lets the owner lock and the limit
// check share the transaction of the insert that follows.
func QuerierFromCtx(ctx context.Context, fallback Querier) Querier {
	if tx, ok := txFrom(ctx); ok {
		return tx
	}
	return fallback
}

// InTx reports whether ctx carries a transaction started by RunInTx.
func InTx(ctx context.Context) bool {
	_, ok := txFrom(ctx)
	return ok
}
