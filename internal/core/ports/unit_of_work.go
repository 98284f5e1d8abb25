package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command or job tick.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one dispatch operation.
// An assignment or a movement step changes an order and its courier, and
// both repositories returned here write through the same transaction.
//
// Repositories obtained before Begin run outside any transaction.
type UnitOfWork interface {
	// Begin opens the transaction. Calling it again while open is a no-op.
	Begin(ctx context.Context) error

	// Commit makes every write since Begin durable and closes the transaction.
	Commit(ctx context.Context) error

	// Rollback discards every write since Begin. After Commit it returns an
	// error, which callers deferring Rollback ignore.
	Rollback(ctx context.Context) error

	// CourierRepository returns a courier repository bound to the open transaction.
	CourierRepository() CourierRepository

	// OrderRepository returns an order repository bound to the open transaction.
	OrderRepository() OrderRepository
}
