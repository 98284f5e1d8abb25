// Package ports defines the persistence contracts of the dispatch domain.
// Adapters implement them; use cases depend only on these interfaces.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no courier has the id.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllReady retrieves every courier in status Ready.
	//
	// Example:
	//   ready, err := repo.GetAllReady(ctx)
	//   if err != nil {
	//       return fmt.Errorf("failed to get ready couriers: %w", err)
	//   }
	GetAllReady(ctx context.Context) ([]*courier.Courier, error)
}
