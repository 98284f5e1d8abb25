package queries

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler reads the couriers table directly.
type GetAllCouriersQueryHandler struct {
	db     *gorm.DB
	bounds kernel.Bounds
}

// NewGetAllCouriersQueryHandler creates a handler for courier retrieval queries.
// Stored locations are validated against bounds.
func NewGetAllCouriersQueryHandler(db *gorm.DB, bounds kernel.Bounds) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db, bounds: bounds}
}

// Handle returns every courier sorted by name, then id.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetAllCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			transport,
			status,
			location_x,
			location_y
		FROM couriers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllCouriersQueryResponse
		var transport, status int
		var locationX, locationY int8
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&transport,
			&status,
			&locationX,
			&locationY,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = courierID

		resp.Transport = courier.Transport(transport)
		if err = resp.Transport.Validate(); err != nil {
			return nil, err
		}

		resp.Status = courier.Status(status)
		if err = resp.Status.Validate(); err != nil {
			return nil, err
		}

		location, locErr := kernel.NewLocationIn(
			h.bounds,
			kernel.Coordinate(locationX),
			kernel.Coordinate(locationY),
		)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location
		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
