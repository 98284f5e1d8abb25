package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Orders read inside a unit of work stay locked until it ends. Listing skips
// orders another dispatch round already holds.
var (
	lockForUpdate  = clause.Locking{Strength: "UPDATE"}
	lockSkipLocked = clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	bounds  kernel.Bounds
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, bounds kernel.Bounds) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		bounds:  bounds,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. created_at is never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("courier_id", "location_x", "location_y", "weight", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Clauses(lockForUpdate).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto, r.bounds)
}

// GetAllCreated retrieves the orders waiting for a courier, oldest first.
func (r *GormOrderRepository) GetAllCreated(ctx context.Context) ([]*order.Order, error) {
	return r.findByStatus(ctx, order.Created)
}

// GetAllAssigned retrieves the orders currently being delivered.
func (r *GormOrderRepository) GetAllAssigned(ctx context.Context) ([]*order.Order, error) {
	return r.findByStatus(ctx, order.Assigned)
}

func (r *GormOrderRepository) findByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(lockSkipLocked).
		Where("status = ?", int(status)).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, len(dtos))
	for i := range dtos {
		o, err := toDomain(dtos[i], r.bounds)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", dtos[i].ID, err)
		}
		orders[i] = o
	}
	return orders, nil
}
