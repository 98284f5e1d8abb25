// Package guard provides ConstructorGuard, a marker that lets value objects,
// aggregates and commands tell a constructor-built instance from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate for a zero-value guard
// when the caller passes no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is invalid.
// Constructors set it with NewConstructorGuard; Validate then reports
// whether the owning struct went through its constructor.
//
// Example usage:
//
//	var ErrWeightIsNotConstructed = errors.New("Weight must be created via NewWeight")
//
//	type Weight struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func (w Weight) Validate() error {
//	    return w.guard.Validate(ErrWeightIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
