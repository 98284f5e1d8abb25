package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler reads Created and Assigned orders from the database.
//
// Example:
//
//	handler := NewGetUncompletedOrdersQueryHandler(db, bounds)
//	pending, err := handler.Handle(ctx, NewGetUncompletedOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders awaiting delivery\n", len(pending))
type GetUncompletedOrdersQueryHandler struct {
	db     *gorm.DB
	bounds kernel.Bounds
}

// NewGetUncompletedOrdersQueryHandler creates a handler for pending order queries.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB, bounds kernel.Bounds) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db, bounds: bounds}
}

// Handle returns Created and Assigned orders in dispatch order, oldest first.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			courier_id,
			status,
			location_x,
			location_y
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY created_at, id
	`, int(order.Created), int(order.Assigned)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUncompletedOrdersQueryResponse
		var status int
		var locationX, locationY int8
		var id uuid.UUID
		var courierID uuid.NullUUID

		err = rows.Scan(
			&id,
			&courierID,
			&status,
			&locationX,
			&locationY,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if courierID.Valid {
			cID, cErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if cErr != nil {
				return nil, cErr
			}
			resp.CourierID = &cID
		}

		resp.Status = order.Status(status)
		if err = resp.Status.ValidateCanHaveCourier(resp.CourierID != nil); err != nil {
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
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
