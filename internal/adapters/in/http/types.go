package http

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Location is a grid position on the wire.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Courier is one element of GET /api/v1/couriers.
type Courier struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Transport string             `json:"transport"`
	Status    string             `json:"status"`
	Location  Location           `json:"location"`
}

// NewCourier is the body of POST /api/v1/couriers.
type NewCourier struct {
	Name      string `json:"name"`
	Transport string `json:"transport"`
}

// Order is one element of GET /api/v1/orders/active.
type Order struct {
	Id        openapi_types.UUID  `json:"id"`
	Status    string              `json:"status"`
	CourierId *openapi_types.UUID `json:"courierId,omitempty"`
	Location  Location            `json:"location"`
}

// NewOrder is the body of POST /api/v1/orders. A missing OrderId is generated.
type NewOrder struct {
	OrderId *openapi_types.UUID `json:"orderId,omitempty"`
	Street  string              `json:"street"`
	Weight  int                 `json:"weight"`
}

// Created carries the id of a created resource.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
