package dispatching_test

import (
	"testing"

	"dispatch/internal/core/application/dispatching"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyCourierAt(t *testing.T, name string, transport courier.Transport, x, y kernel.Coordinate) *courier.Courier {
	t.Helper()
	location, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	c, err := courier.NewCourierAt(name, transport, location)
	require.NoError(t, err)
	require.NoError(t, c.StartWork())
	return c
}

func orderAt(t *testing.T, x, y kernel.Coordinate, weight int) *order.Order {
	t.Helper()
	location, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	w, err := kernel.NewWeight(weight)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), location, w)
	require.NoError(t, err)
	return o
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("should choose courier with shortest time", func(t *testing.T) {
		o := orderAt(t, 5, 7, 1)
		alice := readyCourierAt(t, "Alice", courier.Bicycle, 1, 1) // distance 10, time 5.0
		bob := readyCourierAt(t, "Bob", courier.Scooter, 3, 3)     // distance 6, time 2.0
		charlie := readyCourierAt(t, "Charlie", courier.Car, 6, 8) // distance 2, time 0.5

		chosen, err := dispatching.NewDispatcher().Dispatch(o, []*courier.Courier{alice, bob, charlie})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(charlie))
		assert.Equal(t, order.Assigned, o.Status())
		assert.True(t, o.CourierID().IsEqual(charlie.ID()))
		assert.Equal(t, courier.StatusBusy, charlie.Status())
		assert.Equal(t, courier.StatusReady, alice.Status())
		assert.Equal(t, courier.StatusReady, bob.Status())
	})

	t.Run("should prefer faster transport at equal distance", func(t *testing.T) {
		o := orderAt(t, 5, 1, 1)
		walker := readyCourierAt(t, "Walker", courier.Pedestrian, 1, 1)
		driver := readyCourierAt(t, "Driver", courier.Car, 1, 1)

		chosen, err := dispatching.NewDispatcher().Dispatch(o, []*courier.Courier{walker, driver})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(driver))
	})

	t.Run("should skip couriers that cannot carry the weight", func(t *testing.T) {
		o := orderAt(t, 2, 2, 5)
		near := readyCourierAt(t, "Near", courier.Bicycle, 2, 2)
		far := readyCourierAt(t, "Far", courier.Car, 10, 10)

		chosen, err := dispatching.NewDispatcher().Dispatch(o, []*courier.Courier{near, far})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(far))
		assert.Equal(t, courier.StatusReady, near.Status())
	})

	t.Run("should skip couriers that are not ready", func(t *testing.T) {
		o := orderAt(t, 2, 2, 1)
		offShift, err := courier.NewCourier("Off", courier.Car)
		require.NoError(t, err)
		ready := readyCourierAt(t, "Ready", courier.Pedestrian, 9, 9)

		chosen, err := dispatching.NewDispatcher().Dispatch(o, []*courier.Courier{offShift, ready})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(ready))
		assert.Equal(t, courier.StatusNotAvailable, offShift.Status())
	})

	t.Run("should keep first courier on ties", func(t *testing.T) {
		o := orderAt(t, 5, 5, 1)
		first := readyCourierAt(t, "First", courier.Bicycle, 3, 5)
		second := readyCourierAt(t, "Second", courier.Bicycle, 7, 5)

		chosen, err := dispatching.NewDispatcher().Dispatch(o, []*courier.Courier{first, second})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(first))
	})

	t.Run("should return ErrCourierNotFound for empty list", func(t *testing.T) {
		o := orderAt(t, 5, 5, 1)

		chosen, err := dispatching.NewDispatcher().Dispatch(o, nil)

		require.ErrorIs(t, err, dispatching.ErrCourierNotFound)
		assert.Nil(t, chosen)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("should return ErrCourierNotFound when order is too heavy for all", func(t *testing.T) {
		o := orderAt(t, 5, 5, 9)
		car := readyCourierAt(t, "Car", courier.Car, 1, 1)

		_, err := dispatching.NewDispatcher().Dispatch(o, []*courier.Courier{car})

		require.ErrorIs(t, err, dispatching.ErrCourierNotFound)
		assert.Equal(t, courier.StatusReady, car.Status())
	})

	t.Run("should fail for assigned order", func(t *testing.T) {
		o := orderAt(t, 5, 5, 1)
		_, err := dispatching.NewDispatcher().Dispatch(o, []*courier.Courier{readyCourierAt(t, "A", courier.Car, 1, 1)})
		require.NoError(t, err)

		other := readyCourierAt(t, "B", courier.Car, 1, 1)
		_, err = dispatching.NewDispatcher().Dispatch(o, []*courier.Courier{other})

		require.ErrorIs(t, err, order.ErrAlreadyAssigned)
		assert.Equal(t, courier.StatusReady, other.Status())
	})

	t.Run("should fail for unconstructed order", func(t *testing.T) {
		_, err := dispatching.NewDispatcher().Dispatch(&order.Order{}, nil)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
