// Package orderrepo persists the order aggregate with gorm.
// It maps between the domain aggregate and the orders table.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders table row. CreatedAt orders the dispatch queue
// and is written once on insert.
type OrderDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CourierID *uuid.UUID  `gorm:"type:uuid;index"`
	Location  LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Weight    int         `gorm:"type:int;not null"`
	Status    int         `gorm:"type:smallint;not null"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
}

// TableName overrides gorm's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO holds the delivery destination.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint;not null"`
	Y kernel.Coordinate `gorm:"type:smallint;not null"`
}

func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:        o.ID().Bytes(),
		CourierID: courierID,
		Location: LocationDTO{
			X: o.Location().X(),
			Y: o.Location().Y(),
		},
		Weight: o.Weight().Value(),
		Status: int(o.Status()),
	}
}

// toDomain rebuilds the aggregate through RestoreOrder, which rejects a
// courier reference that disagrees with the status.
func toDomain(dto OrderDTO, bounds kernel.Bounds) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	loc, err := kernel.NewLocationIn(bounds, dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, loc, weight, order.Status(dto.Status), courierID)
}
