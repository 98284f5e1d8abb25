package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// GET /api/v1/couriers
	GetCouriers(ctx echo.Context) error
	// POST /api/v1/couriers
	CreateCourier(ctx echo.Context) error
	// POST /api/v1/couriers/{courierId}/start
	StartWork(ctx echo.Context, courierID openapi_types.UUID) error
	// POST /api/v1/couriers/{courierId}/stop
	StopWork(ctx echo.Context, courierID openapi_types.UUID) error
	// POST /api/v1/orders
	CreateOrder(ctx echo.Context) error
	// GET /api/v1/orders/active
	GetActiveOrders(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetCouriers(ctx echo.Context) error {
	return w.Handler.GetCouriers(ctx)
}

func (w *ServerInterfaceWrapper) CreateCourier(ctx echo.Context) error {
	return w.Handler.CreateCourier(ctx)
}

func (w *ServerInterfaceWrapper) StartWork(ctx echo.Context) error {
	courierID, err := bindCourierID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StartWork(ctx, courierID)
}

func (w *ServerInterfaceWrapper) StopWork(ctx echo.Context) error {
	courierID, err := bindCourierID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StopWork(ctx, courierID)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetActiveOrders(ctx echo.Context) error {
	return w.Handler.GetActiveOrders(ctx)
}

func bindCourierID(ctx echo.Context) (openapi_types.UUID, error) {
	var courierID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "courierId", ctx.Param("courierId"), &courierID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return courierID, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter courierId: %s", err))
	}
	return courierID, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of si on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/couriers", wrapper.GetCouriers)
	router.POST("/api/v1/couriers", wrapper.CreateCourier)
	router.POST("/api/v1/couriers/:courierId/start", wrapper.StartWork)
	router.POST("/api/v1/couriers/:courierId/stop", wrapper.StopWork)
	router.POST("/api/v1/orders", wrapper.CreateOrder)
	router.GET("/api/v1/orders/active", wrapper.GetActiveOrders)
}
