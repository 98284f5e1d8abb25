package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Coordinate represents a position value on the delivery grid.
type Coordinate int8

const (
	// LocationMinX is the default minimum X coordinate on the delivery grid.
	LocationMinX Coordinate = 1
	// LocationMinY is the default minimum Y coordinate on the delivery grid.
	LocationMinY Coordinate = 1
	// LocationMaxX is the default maximum X coordinate on the delivery grid.
	LocationMaxX Coordinate = 10
	// LocationMaxY is the default maximum Y coordinate on the delivery grid.
	LocationMaxY Coordinate = 10
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
// Locations must be created using NewLocation, NewLocationIn or the Bounds helpers.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewLocationIn constructors")

// Bounds is the inclusive rectangle of valid grid coordinates.
// Every coordinate is positive and each minimum does not exceed its maximum.
// The zero value is invalid.
type Bounds struct {
	minX Coordinate
	minY Coordinate
	maxX Coordinate
	maxY Coordinate
}

// DefaultBounds returns the reference 1..10 grid on both axes.
func DefaultBounds() Bounds {
	return Bounds{
		minX: LocationMinX,
		minY: LocationMinY,
		maxX: LocationMaxX,
		maxY: LocationMaxY,
	}
}

// NewBounds creates grid bounds. Minimums must be at least 1 and
// maximums must not be lower than the matching minimum.
//
// Example:
//
//	bounds, err := kernel.NewBounds(1, 1, 20, 20)
//	if err != nil {
//	    return err
//	}
//	loc, err := kernel.NewLocationIn(bounds, 15, 3)
func NewBounds(minX, minY, maxX, maxY Coordinate) (Bounds, error) {
	b := Bounds{minX: minX, minY: minY, maxX: maxX, maxY: maxY}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Validate reports whether the bounds describe a non-empty positive grid.
func (b Bounds) Validate() error {
	return errors.Join(
		validateAxis("minX", "maxX", b.minX, b.maxX),
		validateAxis("minY", "maxY", b.minY, b.maxY),
	)
}

// MinX returns the smallest valid X coordinate.
func (b Bounds) MinX() Coordinate { return b.minX }

// MinY returns the smallest valid Y coordinate.
func (b Bounds) MinY() Coordinate { return b.minY }

// MaxX returns the largest valid X coordinate.
func (b Bounds) MaxX() Coordinate { return b.maxX }

// MaxY returns the largest valid Y coordinate.
func (b Bounds) MaxY() Coordinate { return b.maxY }

// Contains reports whether (x, y) lies inside the bounds.
func (b Bounds) Contains(x, y Coordinate) bool {
	return x >= b.minX && x <= b.maxX && y >= b.minY && y <= b.maxY
}

// MinLocation returns the lower-left corner of the bounds.
func (b Bounds) MinLocation() (Location, error) {
	return NewLocationIn(b, b.minX, b.minY)
}

// RandomLocation returns a location with uniformly random coordinates inside the bounds.
func (b Bounds) RandomLocation() (Location, error) {
	if err := b.Validate(); err != nil {
		return Location{}, err
	}
	x := b.minX + Coordinate(rand.IntN(int(b.maxX)-int(b.minX)+1)) //nolint:gosec // not security sensitive
	y := b.minY + Coordinate(rand.IntN(int(b.maxY)-int(b.minY)+1)) //nolint:gosec // not security sensitive
	return NewLocationIn(b, x, y)
}

// String returns the bounds as "Bounds(minX..maxX,minY..maxY)".
func (b Bounds) String() string {
	return fmt.Sprintf("Bounds(%d..%d,%d..%d)", b.minX, b.maxX, b.minY, b.maxY)
}

// Location represents a point on the delivery grid with validated coordinates.
// Location is an immutable value object; two locations are equal when their
// coordinates are equal. The zero value is invalid.
//
// Example:
//
//	loc, err := kernel.NewLocation(5, 7)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Location: %s", loc) // Output: Location(5,7)
type Location struct { //nolint:recvcheck //using for validation
	x      Coordinate
	y      Coordinate
	bounds Bounds
	guard  guard.ConstructorGuard
}

// NewLocation creates a Location inside DefaultBounds.
// Returns a validation error if either coordinate is outside [1..10].
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	return NewLocationIn(DefaultBounds(), x, y)
}

// NewLocationIn creates a Location validated against the given bounds.
// Out-of-range coordinates are reported together via errors.Join.
func NewLocationIn(bounds Bounds, x Coordinate, y Coordinate) (Location, error) {
	if err := bounds.Validate(); err != nil {
		return Location{}, err
	}

	loc := Location{
		bounds: bounds,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MinLocation returns the lower-left corner of DefaultBounds, the default
// spawn point for new couriers.
func MinLocation() Location {
	loc, _ := DefaultBounds().MinLocation() //nolint:errcheck // default bounds are always valid
	return loc
}

// NewRandomLocation creates a Location with random coordinates inside DefaultBounds.
func NewRandomLocation() (Location, error) {
	return DefaultBounds().RandomLocation()
}

// Validate checks if the Location was properly constructed using a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate of the location.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the Y coordinate of the location.
func (l Location) Y() Coordinate {
	return l.y
}

// Bounds returns the grid the location was validated against.
func (l Location) Bounds() Bounds {
	return l.bounds
}

// String returns the location in the format "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares the coordinates of two locations.
// Both locations must be properly constructed.
//
// Example:
//
//	loc1, _ := NewLocation(5, 7)
//	loc2, _ := NewLocation(5, 7)
//	equal, err := loc1.IsEqual(loc2) // equal = true, err = nil
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.x == other.x && l.y == other.y, nil
}

// DistanceTo calculates the Manhattan distance |x1-x2| + |y1-y2| between two locations.
// The result is symmetric and is zero only for equal locations.
// Returns a validation error if either location is the zero value.
//
// Example:
//
//	loc1, _ := NewLocation(1, 1)
//	loc2, _ := NewLocation(4, 5)
//	distance, err := loc1.DistanceTo(loc2) // distance = 7
func (l Location) DistanceTo(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return absInt(int(l.x)-int(other.x)) + absInt(int(l.y)-int(other.y)), nil
}

// setX sets the x coordinate with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// The private setters are only called during construction.
func (l *Location) setX(x Coordinate) error {
	if x < l.bounds.minX || x > l.bounds.maxX {
		return errs.NewValueIsOutOfRangeError("x", x, l.bounds.minX, l.bounds.maxX)
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
func (l *Location) setY(y Coordinate) error {
	if y < l.bounds.minY || y > l.bounds.maxY {
		return errs.NewValueIsOutOfRangeError("y", y, l.bounds.minY, l.bounds.maxY)
	}

	l.y = y
	return nil
}

func validateAxis(minName, maxName string, minValue, maxValue Coordinate) error {
	if minValue < 1 {
		return errs.NewValueIsOutOfRangeError(minName, minValue, 1, math.MaxInt8)
	}
	if maxValue < minValue {
		return errs.NewValueIsOutOfRangeError(maxName, maxValue, minValue, math.MaxInt8)
	}
	return nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
