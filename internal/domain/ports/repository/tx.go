package repository

import "context"

// Tx is an opaque transaction handle. Repositories accept it so a use
// case can group writes; passing NoTX runs against the pool directly.
type Tx = any

// NoTX is passed when an operation should not join a transaction.
var NoTX Tx = nil

// TransactionManager begins a transaction, invokes fn, and commits or
// rolls back depending on fn's error.
type TransactionManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
