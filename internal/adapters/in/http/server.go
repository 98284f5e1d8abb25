// Package http exposes the dispatch use cases as a JSON API on echo.
package http

import (
	"context"
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"gorm.io/gorm"
)

type (
	CreateCourierHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCourierCommand) (kernel.UUID, error)
	}
	StartWorkHandler interface {
		Handle(ctx context.Context, cmd commands.StartWorkCommand) error
	}
	StopWorkHandler interface {
		Handle(ctx context.Context, cmd commands.StopWorkCommand) error
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	GetAllCouriersHandler interface {
		Handle(ctx context.Context, query queries.GetAllCouriersQuery) ([]queries.GetAllCouriersQueryResponse, error)
	}
	GetUncompletedOrdersHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetUncompletedOrdersQuery,
		) ([]queries.GetUncompletedOrdersQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCourier        CreateCourierHandler
	StartWork            StartWorkHandler
	StopWork             StopWorkHandler
	CreateOrder          CreateOrderHandler
	GetAllCouriers       GetAllCouriersHandler
	GetUncompletedOrders GetUncompletedOrdersHandler
}

// Server implements ServerInterface on top of the command and query handlers.
type Server struct {
	handlers Handlers
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.handlers.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return err
	}

	response := make([]Courier, len(couriers))
	for i, c := range couriers {
		response[i] = Courier{
			Id:        c.ID.Bytes(),
			Name:      c.Name,
			Transport: c.Transport.Name(),
			Status:    c.Status.String(),
			Location:  toLocation(c.Location),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body NewCourier
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	transport, err := courier.TransportFromName(body.Transport)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name, transport)
	if err != nil {
		return err
	}

	id, err := s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

// StartWork handles POST /api/v1/couriers/{courierId}/start.
func (s *Server) StartWork(ctx echo.Context, courierID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(courierID[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartWorkCommand(id)
	if err != nil {
		return err
	}

	if err := s.handlers.StartWork.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StopWork handles POST /api/v1/couriers/{courierId}/stop.
func (s *Server) StopWork(ctx echo.Context, courierID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(courierID[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewStopWorkCommand(id)
	if err != nil {
		return err
	}

	if err := s.handlers.StopWork.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.OrderId != nil {
		id, err := kernel.UUIDFromBytes(body.OrderId[:])
		if err != nil {
			return err
		}
		orderID = id
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, body.Street, body.Weight)
	if err != nil {
		return err
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Created{Id: orderID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetUncompletedOrders.Handle(
		ctx.Request().Context(),
		queries.NewGetUncompletedOrdersQuery(),
	)
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			Id:       o.ID.Bytes(),
			Status:   o.Status.String(),
			Location: toLocation(o.Location),
		}
		if o.CourierID != nil {
			courierID := o.CourierID.Bytes()
			response[i].CourierId = &courierID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toLocation(l kernel.Location) Location {
	return Location{X: int(l.X()), Y: int(l.Y())}
}

// StatusCode maps a use-case error onto an HTTP status.
//
//	validation          400
//	object not found    404
//	state machine       409
//	anything else       500
func StatusCode(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case isStateViolation(err), errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func isStateViolation(err error) bool {
	for _, target := range []error{
		courier.ErrAlreadyStarted,
		courier.ErrNotAvailable,
		courier.ErrAlreadyBusy,
		courier.ErrIncompleteDelivery,
		order.ErrAlreadyAssigned,
		order.ErrNotAssigned,
		order.ErrBusyCourier,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
