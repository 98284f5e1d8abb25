package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Order state machine violations.
var (
	// ErrNotAssigned is returned by Complete when the order is not Assigned.
	ErrNotAssigned = errors.New("order cannot be completed: order is not assigned")
	// ErrAlreadyAssigned is returned by AssignToCourier when the order has left Created.
	ErrAlreadyAssigned = errors.New("order cannot be assigned: order is already assigned or completed")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Assigned ──> Completed
//
// Completed is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a courier.
	Created

	// Assigned indicates the order has been handed to a courier.
	Assigned

	// Completed indicates the order has been delivered.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Assigned:  "Assigned",
		Completed: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Assigned:  "Assigned",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Assigned, Completed.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the order still waits for delivery.
func (s Status) IsActive() bool {
	return s == Created || s == Assigned
}

// ValidateCanHaveCourier validates the consistency between order status and courier assignment.
//
// Business Rules:
//   - Created orders must not have a courier assigned
//   - Assigned orders must have a courier assigned
//   - Completed orders must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Assigned || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions Created to Assigned.
//
// Returns:
//   - (Assigned, nil) from Created
//   - (0, ErrAlreadyAssigned) from Assigned or Completed
//   - (0, validation error) from an invalid status
func (s Status) Assign() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s != Created {
		return 0, ErrAlreadyAssigned
	}

	return Assigned, nil
}

// Complete transitions Assigned to Completed.
// Any other status fails with ErrNotAssigned.
//
// Example:
//
//	newStatus, err := currentStatus.Complete()
//	if errors.Is(err, order.ErrNotAssigned) {
//	    // Order was not in Assigned status
//	}
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, fmt.Errorf("%w: status is %s", ErrNotAssigned, s)
	}

	return Completed, nil
}
