package courierrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Rows read inside a unit of work stay locked until it ends, so a courier
// cannot be handed two orders by concurrent dispatch rounds. Ready couriers
// locked by another round are skipped rather than waited for.
var (
	lockForUpdate  = clause.Locking{Strength: "UPDATE"}
	lockSkipLocked = clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}
)

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	bounds  kernel.Bounds
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
// Locations read back from the table are validated against bounds.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker, bounds kernel.Bounds) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
		bounds:  bounds,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
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

// Update overwrites the mutable columns of an existing courier.
// Returns an ObjectNotFoundError when no row has the courier's id.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "transport", "location_x", "location_y", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID and locks its row for the rest of the transaction.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).Clauses(lockForUpdate).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto, r.bounds)
}

// GetAllReady retrieves every courier that is on shift and not delivering,
// ordered by name. Couriers locked by a concurrent transaction are left out.
func (r *GormCourierRepository) GetAllReady(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	err := r.db.WithContext(ctx).
		Clauses(lockSkipLocked).
		Where("status = ?", int(courier.StatusReady)).
		Order("name, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.restoreAll(dtos)
}

func (r *GormCourierRepository) restoreAll(dtos []CourierDTO) ([]*courier.Courier, error) {
	couriers := make([]*courier.Courier, len(dtos))
	for i := range dtos {
		c, err := toDomain(dtos[i], r.bounds)
		if err != nil {
			return nil, fmt.Errorf("courier %s: %w", dtos[i].ID, err)
		}
		couriers[i] = c
	}
	return couriers, nil
}
