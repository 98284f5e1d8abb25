// Package courierrepo persists the courier aggregate with gorm.
// It maps between the domain aggregate and the couriers table.
package courierrepo

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the couriers table row.
type CourierDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name      string      `gorm:"type:varchar(255);not null"`
	Transport int         `gorm:"type:smallint;not null"`
	Location  LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status    int         `gorm:"type:smallint;not null;index"`
}

// TableName overrides gorm's default "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// LocationDTO holds the courier's current grid position.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint;not null"`
	Y kernel.Coordinate `gorm:"type:smallint;not null"`
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Transport: int(c.Transport()),
		Location: LocationDTO{
			X: c.Location().X(),
			Y: c.Location().Y(),
		},
		Status: int(c.Status()),
	}
}

// toDomain rebuilds the aggregate; the location is validated against bounds.
func toDomain(dto CourierDTO, bounds kernel.Bounds) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocationIn(bounds, dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, courier.Transport(dto.Transport), loc, courier.Status(dto.Status))
}
