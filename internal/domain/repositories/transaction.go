package repositories

import (
	"context"
)

// TxFn is a function executed within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager runs a function inside a single database transaction.
// Repositories called with the transaction context automatically participate.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
