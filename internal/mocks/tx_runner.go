package mocks

import (
	"context"

	"github.com/taskhive/taskhive/internal/store"
)

// TxRunner is a pass-through store.TxRunner for unit tests: it invokes the
// function directly with a nil transaction. Store mocks return themselves
// from WithTx, so the transactional path is exercised without a database.
type TxRunner struct {
	// Err, when set, is returned without invoking the function, simulating
	// a failure to begin the transaction.
	Err error
}

// Ensure TxRunner implements store.TxRunner
var _ store.TxRunner = (*TxRunner)(nil)

// RunInTx implements store.TxRunner.
func (r *TxRunner) RunInTx(ctx context.Context, fn store.TxFn) error {
	if r.Err != nil {
		return r.Err
	}
	return fn(ctx, nil)
}
