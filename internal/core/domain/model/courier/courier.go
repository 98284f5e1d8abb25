package courier

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier construction.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrTargetIsRequired is returned when Move or CalculateTimeToLocation get an absent location.
	ErrTargetIsRequired = errs.NewValueIsRequiredError("target location")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that owns the courier's transport, position on the
// grid and availability status.
//
// Business rules:
//   - Courier has a generated UUID, a non-empty name and a catalog transport
//   - New couriers start at the grid's minimum location and are NotAvailable
//   - One Move call covers at most Transport().Speed() cells, X axis first
//   - Status changes only through StartWork, InWork, CompleteOrder and StopWork
//
// Example usage:
//
//	c, err := courier.NewCourier("Bob", courier.Bicycle)
//	if err != nil {
//	    return err
//	}
//	_ = c.StartWork() // Ready to receive an order
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// transport determines the movement budget and carrying capacity
	transport Transport
	// location is the current position of the courier on the delivery grid
	location kernel.Location
	// status is the current position in the availability state machine
	status Status
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a courier at kernel.MinLocation with status NotAvailable.
//
// Returns:
//   - *Courier: A new courier with a freshly generated identifier
//   - error: Aggregated validation errors for an empty name or unknown transport
//
// Example:
//
//	c, err := NewCourier("Alice", Car)
//	if err != nil {
//	    log.Fatal("Failed to create courier:", err)
//	}
//	fmt.Printf("Created courier: %s at %s", c.Name(), c.Location())
func NewCourier(name string, transport Transport) (*Courier, error) {
	return NewCourierAt(name, transport, kernel.MinLocation())
}

// NewCourierAt creates a NotAvailable courier at an explicit spawn location.
// Used when the grid bounds are configured and the spawn point is their minimum.
func NewCourierAt(name string, transport Transport, location kernel.Location) (*Courier, error) {
	return RestoreCourier(kernel.NewUUID(), name, transport, location, StatusNotAvailable)
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// Every field is validated again, so a corrupted row cannot produce a courier
// that breaks the aggregate's invariants.
func RestoreCourier(
	id kernel.UUID,
	name string,
	transport Transport,
	location kernel.Location,
	status Status,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setTransport(transport),
		courier.setLocation(location),
		courier.setStatus(status),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Transport returns the courier's transport. It never changes after creation.
func (c *Courier) Transport() Transport {
	return c.transport
}

// Location returns the current position of the courier on the delivery grid.
func (c *Courier) Location() kernel.Location {
	return c.location
}

// Status returns the current availability status.
func (c *Courier) Status() Status {
	return c.status
}

// StartWork puts the courier on shift (Ready).
// Fails with ErrAlreadyStarted while the courier is Busy.
func (c *Courier) StartWork() error {
	next, err := c.status.StartWork()
	if err != nil {
		return err
	}

	c.status = next
	return nil
}

// InWork marks a Ready courier as Busy.
// Fails with ErrNotAvailable when off shift and ErrAlreadyBusy when already delivering.
func (c *Courier) InWork() error {
	next, err := c.status.InWork()
	if err != nil {
		return err
	}

	c.status = next
	return nil
}

// CompleteOrder makes the courier Ready again after a delivery. It never fails.
func (c *Courier) CompleteOrder() {
	c.status = c.status.CompleteOrder()
}

// StopWork takes the courier off shift (NotAvailable).
// Fails with ErrIncompleteDelivery while the courier is Busy.
func (c *Courier) StopWork() error {
	next, err := c.status.StopWork()
	if err != nil {
		return err
	}

	c.status = next
	return nil
}

// CanCarry reports whether the courier's transport can carry the weight.
func (c *Courier) CanCarry(weight kernel.Weight) (bool, error) {
	return c.transport.CanCarry(weight)
}

// CalculateTimeToLocation estimates how many movement steps it takes to reach target.
// The estimate is Manhattan distance divided by speed as an exact real number,
// so a distance of 3 at speed 2 takes 1.5 steps.
//
// Example:
//
//	target, _ := kernel.NewLocation(4, 1)
//	steps, err := courier.CalculateTimeToLocation(target) // 1.5 for a bicycle at (1,1)
func (c *Courier) CalculateTimeToLocation(target kernel.Location) (float64, error) {
	if err := target.Validate(); err != nil {
		return 0, ErrTargetIsRequired
	}

	distance, err := c.location.DistanceTo(target)
	if err != nil {
		return 0, err
	}

	return float64(distance) / float64(c.transport.Speed()), nil
}

// Move advances the courier one simulation step toward target.
//
// Movement behavior:
//   - The step budget equals the transport speed
//   - The X gap is closed first, then the remaining budget closes the Y gap
//   - Neither axis overshoots the target, so the path is rook-like, never diagonal
//   - A gap left open when the budget runs out is continued by the next call
//   - At the target, Move leaves the location unchanged
//   - The target must lie inside the courier's grid; otherwise Move returns a
//     ValueIsOutOfRangeError and the courier stays put
//
// Example:
//
//	// Bicycle (speed 2) at (1,1) moving to (4,1)
//	_ = c.Move(target) // (3,1)
//	_ = c.Move(target) // (4,1)
func (c *Courier) Move(target kernel.Location) error {
	if err := target.Validate(); err != nil {
		return ErrTargetIsRequired
	}

	grid := c.location.Bounds()
	if !grid.Contains(target.X(), target.Y()) {
		return errs.NewValueIsOutOfRangeError(
			"target location",
			target,
			fmt.Sprintf("(%d,%d)", grid.MinX(), grid.MinY()),
			fmt.Sprintf("(%d,%d)", grid.MaxX(), grid.MaxY()),
		)
	}

	budget := c.transport.Speed()
	curX, curY := c.location.X(), c.location.Y()

	stepX := minInt(budget, absInt(int(target.X())-int(curX)))
	curX += kernel.Coordinate(sign(int(target.X())-int(curX)) * stepX) //nolint:gosec // bounded by grid
	budget -= stepX

	stepY := minInt(budget, absInt(int(target.Y())-int(curY)))
	curY += kernel.Coordinate(sign(int(target.Y())-int(curY)) * stepY) //nolint:gosec // bounded by grid

	newLocation, err := kernel.NewLocationIn(c.location.Bounds(), curX, curY)
	if err != nil {
		return err
	}
	return c.setLocation(newLocation)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Courier) setTransport(transport Transport) error {
	if err := transport.Validate(); err != nil {
		return err
	}

	c.transport = transport
	return nil
}

// setLocation is used during construction and movement.
func (c *Courier) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
