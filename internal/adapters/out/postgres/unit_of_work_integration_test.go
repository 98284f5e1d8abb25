package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/postgrestest"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the gorm unit of work against PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *postgrestest.Database
	factory  *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB, kernel.DefaultBounds())
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CourierRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction, "Rollback after commit is rejected")
}

// TestUnitOfWork_AssignmentIsAtomic persists both sides of an assignment in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentIsAtomic() {
	ctx := context.Background()
	o, c := suite.seedOrderAndReadyCourier(ctx)

	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))

	loadedOrder, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	loadedCourier, err := uow.CourierRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(loadedOrder.AssignToCourier(loadedCourier))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loadedOrder))
	suite.Require().NoError(uow.CourierRepository().Update(ctx, loadedCourier))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]kernel.UUID{o.ID(), c.ID()}, uow.TrackedAggregates())

	check := suite.factory.Create()
	storedOrder, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, storedOrder.Status())
	suite.True(storedOrder.CourierID().IsEqual(c.ID()))

	storedCourier, err := check.CourierRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.StatusBusy, storedCourier.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsBothAggregates() {
	ctx := context.Background()
	o, c := suite.seedOrderAndReadyCourier(ctx)

	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(o.AssignToCourier(c))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.CourierRepository().Update(ctx, c))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(uow.TrackedAggregates())

	check := suite.factory.Create()
	storedOrder, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Created, storedOrder.Status())
	suite.Nil(storedOrder.CourierID())

	storedCourier, err := check.CourierRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.StatusReady, storedCourier.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := suite.createOrder()
	order2 := suite.createOrder()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	check := suite.factory.Create()
	_, err = check.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = check.OrderRepository().Get(ctx, order2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := suite.createOrder()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(o))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentRoundsSkipLockedRows() {
	ctx := context.Background()
	o, c := suite.seedOrderAndReadyCourier(ctx)

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	defer func() { _ = first.Rollback(ctx) }()
	created, err := first.OrderRepository().GetAllCreated(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(created, 1)
	suite.True(created[0].IsEqual(o))
	ready, err := first.CourierRepository().GetAllReady(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(ready, 1)
	suite.True(ready[0].IsEqual(c))

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	defer func() { _ = second.Rollback(ctx) }()
	created, err = second.OrderRepository().GetAllCreated(ctx)
	suite.Require().NoError(err)
	suite.Empty(created, "order held by the first round is skipped")
	ready, err = second.CourierRepository().GetAllReady(ctx)
	suite.Require().NoError(err)
	suite.Empty(ready, "courier held by the first round is skipped")

	suite.Require().NoError(first.Rollback(ctx))
	created, err = second.OrderRepository().GetAllCreated(ctx)
	suite.Require().NoError(err)
	suite.Len(created, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOrderAndReadyCourier(ctx context.Context) (*order.Order, *courier.Courier) {
	o := suite.createOrder()
	c, err := courier.NewCourier("Bob", courier.Bicycle)
	suite.Require().NoError(err)
	suite.Require().NoError(c.StartWork())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, c))
	suite.Require().NoError(uow.Commit(ctx))

	return o, c
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder() *order.Order {
	location, err := kernel.NewLocation(5, 7)
	suite.Require().NoError(err)
	weight, err := kernel.NewWeight(2)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), location, weight)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
