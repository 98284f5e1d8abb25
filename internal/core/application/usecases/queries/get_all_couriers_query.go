// Package queries contains the read side of the dispatch service.
// Handlers read straight from the tables with SQL and return flat read
// models instead of aggregates.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetAllCouriersQueryIsNotConstructed = errors.New(
		"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
	)
)

// GetAllCouriersQuery lists every courier with its transport, status and position.
//
// Example:
//
//	handler := NewGetAllCouriersQueryHandler(db, bounds)
//	couriers, err := handler.Handle(ctx, NewGetAllCouriersQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
//	for _, c := range couriers {
//	    fmt.Printf("%s (%s) is %s at %s\n", c.Name, c.Transport, c.Status, c.Location)
//	}
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCouriersQuery creates a query to retrieve all couriers.
func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// GetAllCouriersQueryResponse is one courier in the read model.
type GetAllCouriersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Transport courier.Transport
	Status    courier.Status
	Location  kernel.Location
}
