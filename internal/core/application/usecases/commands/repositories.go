// Package commands holds the write side of the dispatch service. Every handler
// validates its command, opens a unit of work, changes aggregates through
// their own methods and commits.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Views of ports.UnitOfWork. A handler depends on the narrowest view that
// covers the aggregates it touches, so its test doubles stay small.
type (
	transaction interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CourierUoW exposes couriers only.
	CourierUoW interface {
		transaction
		CourierRepository() ports.CourierRepository
	}

	// OrderUoW exposes orders only.
	OrderUoW interface {
		transaction
		OrderRepository() ports.OrderRepository
	}

	// UoW exposes both aggregates in one transaction. Assignment and movement
	// change an order together with its courier.
	UoW interface {
		transaction
		CourierRepository() ports.CourierRepository
		OrderRepository() ports.OrderRepository
	}

	CourierUoWFactory interface{ Create() CourierUoW }
	OrderUoWFactory   interface{ Create() OrderUoW }
	UoWFactory        interface{ Create() UoW }
)
