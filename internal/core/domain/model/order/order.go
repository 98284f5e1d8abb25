package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCourierIsRequired is returned by AssignToCourier when no courier is given.
	ErrCourierIsRequired = errs.NewValueIsRequiredError("courier")
	// ErrBusyCourier is the sentinel wrapped by BusyCourierError.
	ErrBusyCourier = errors.New("order cannot be assigned: courier is busy")
)

// BusyCourierError reports an assignment attempt to a courier that is delivering
// another order. It carries the courier id for diagnostics.
type BusyCourierError struct {
	CourierID kernel.UUID
}

// NewBusyCourierError creates a BusyCourierError for the given courier.
func NewBusyCourierError(courierID kernel.UUID) *BusyCourierError {
	return &BusyCourierError{CourierID: courierID}
}

func (e *BusyCourierError) Error() string {
	return fmt.Sprintf("%s: courier ID is %s", ErrBusyCourier.Error(), e.CourierID)
}

func (e *BusyCourierError) Unwrap() error {
	return ErrBusyCourier
}

// Order represents a delivery order in the system. It is the aggregate root that manages
// the order lifecycle from creation through assignment to completion.
//
// Order follows these invariants:
//   - Must have a valid caller-supplied identifier
//   - Must have a valid delivery location and a positive weight
//   - courierID is set iff status is Assigned or Completed, and is never cleared
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order keeps the courier's identity only; the courier aggregate is passed
// into AssignToCourier for the duration of the call.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// location is the delivery destination
	location kernel.Location

	// weight is what the courier's transport has to carry
	weight kernel.Weight

	// status represents the current state in the order lifecycle
	status Status

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with status Created and no courier.
//
// Parameters:
//   - id: Unique identifier for the order (must be a constructed, non-nil UUID)
//   - location: Delivery location with validated coordinates
//   - weight: Order weight
//
// Example:
//
//	location, _ := kernel.NewLocation(5, 7)
//	weight, _ := kernel.NewWeight(3)
//	o, err := order.NewOrder(kernel.NewUUID(), location, weight)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, location kernel.Location, weight kernel.Weight) (*Order, error) {
	return RestoreOrder(id, location, weight, Created, nil)
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// The courier reference must agree with the status: present for Assigned
// and Completed orders, absent for Created ones.
func RestoreOrder(
	id kernel.UUID,
	location kernel.Location,
	weight kernel.Weight,
	status Status,
	courierID *kernel.UUID,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setLocation(location),
		order.setWeight(weight),
		order.setStatus(status, courierID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}

	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Location returns the delivery location for the order.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Weight returns the order's weight.
func (o *Order) Weight() kernel.Weight {
	return o.weight
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CourierID returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) CourierID() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// AssignToCourier hands the order to a courier and puts the courier in work.
//
// Rules:
//   - courier must be present and constructed (ErrCourierIsRequired)
//   - a Busy courier fails with *BusyCourierError
//   - the order must be Created (ErrAlreadyAssigned)
//   - the courier must be Ready (courier.ErrNotAvailable otherwise)
//
// On success the order records the courier id and becomes Assigned, and the
// courier becomes Busy. On failure neither aggregate changes. The caller
// persists both aggregates in one unit of work.
//
// Example:
//
//	if err := o.AssignToCourier(c); err != nil {
//	    var busy *order.BusyCourierError
//	    if errors.As(err, &busy) {
//	        // busy.CourierID is the courier that is still delivering
//	    }
//	}
func (o *Order) AssignToCourier(c *courier.Courier) error {
	if c == nil || c.Validate() != nil {
		return ErrCourierIsRequired
	}

	if c.Status() == courier.StatusBusy {
		return NewBusyCourierError(c.ID())
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	if err := c.InWork(); err != nil {
		return err
	}

	courierID := c.ID()
	o.courierID = &courierID
	o.status = newStatus
	return nil
}

// Complete marks the order as delivered.
// Fails with ErrNotAssigned unless the order is Assigned.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

// setStatus checks the status together with the courier reference.
func (o *Order) setStatus(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
		id := *courierID
		o.courierID = &id
	}

	o.status = status
	return nil
}
