// Package repokit binds storage repos to an engine or to one of its transactions
package repokit

import (
	"context"
	"fmt"

	"evalsnap/internal/platform/store"
)

// Queryer is the statement surface a repo is bound to
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows
	// Row is a single row result from a query
	Row = store.Row
	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// Binder produces a repo of type T over a Queryer, usually an engine or a tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a constructor to Binder
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds b to q; a nil q is a wiring bug and panics
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		var zero T
		panic(fmt.Sprintf("repokit: binding %T to a nil Queryer", zero))
	}
	return b.Bind(q)
}

// WithTx runs fn inside a transaction using the provided TxRunner
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}

// InTx runs fn with a repo bound to the transaction; fn's error rolls it back
func InTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(repo T) error) error {
	return WithTx(ctx, tx, func(q Queryer) error {
		return fn(MustBind(b, q))
	})
}
