package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a zero-value Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight constructor")

// Weight is the capacity an order requires, in whole kilograms.
// Weight is an immutable value object compared by value; the zero value is invalid.
//
// Example:
//
//	w, err := kernel.NewWeight(3)
//	if err != nil {
//	    return err
//	}
//	capacity, _ := kernel.NewWeight(4)
//	fits := w.LessOrEqual(capacity) // true
type Weight struct {
	value int
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight. The value must be greater than zero.
func NewWeight(value int) (Weight, error) {
	if value <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%d is not greater than 0", value))
	}

	return Weight{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Weight was created through NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Value returns the weight in kilograms.
func (w Weight) Value() int {
	return w.value
}

// IsEqual reports whether both weights carry the same value.
func (w Weight) IsEqual(other Weight) bool {
	return w.value == other.value
}

// Less reports whether w is strictly lighter than other.
func (w Weight) Less(other Weight) bool {
	return w.value < other.value
}

// LessOrEqual reports whether w is not heavier than other.
func (w Weight) LessOrEqual(other Weight) bool {
	return w.value <= other.value
}

// Greater reports whether w is strictly heavier than other.
func (w Weight) Greater(other Weight) bool {
	return w.value > other.value
}

// GreaterOrEqual reports whether w is not lighter than other.
func (w Weight) GreaterOrEqual(other Weight) bool {
	return w.value >= other.value
}

// String returns the weight in the format "Weight(3)".
func (w Weight) String() string {
	return fmt.Sprintf("Weight(%d)", w.value)
}
