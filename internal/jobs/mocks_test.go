package jobs_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
)

type MockAssignOrdersHandler struct{ mock.Mock }

func (m *MockAssignOrdersHandler) Handle(ctx context.Context, cmd commands.AssignOrdersCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockMoveCouriersHandler struct{ mock.Mock }

func (m *MockMoveCouriersHandler) Handle(ctx context.Context, cmd commands.MoveCouriersCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
