package database

import "context"

// TxRunner wraps a multi-step store mutation in whatever atomicity the
// active driver offers: a real transaction for Postgres, a passthrough for
// the memory store whose per-call lock already serializes writers.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// Passthrough runs fn directly with no transactional boundary.
func Passthrough() TxRunner {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
}
