package http_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCreateCourierHandler struct {
	mock.Mock
}

func (m *MockCreateCourierHandler) Handle(ctx context.Context, cmd commands.CreateCourierCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockStartWorkHandler struct {
	mock.Mock
}

func (m *MockStartWorkHandler) Handle(ctx context.Context, cmd commands.StartWorkCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockStopWorkHandler struct {
	mock.Mock
}

func (m *MockStopWorkHandler) Handle(ctx context.Context, cmd commands.StopWorkCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockGetAllCouriersHandler struct {
	mock.Mock
}

func (m *MockGetAllCouriersHandler) Handle(
	ctx context.Context,
	query queries.GetAllCouriersQuery,
) ([]queries.GetAllCouriersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetAllCouriersQueryResponse), args.Error(1)
}

type MockGetUncompletedOrdersHandler struct {
	mock.Mock
}

func (m *MockGetUncompletedOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetUncompletedOrdersQuery,
) ([]queries.GetUncompletedOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetUncompletedOrdersQueryResponse), args.Error(1)
}
