// Package kernel provides the shared value objects of the dispatch domain.
//
// The package includes:
//   - UUID: identifiers for couriers and orders
//   - Location and Bounds: validated coordinates on the delivery grid and the
//     grid itself, with Manhattan distance
//   - Weight: the positive capacity an order requires
//
// All values are immutable and their zero values are invalid; they must be
// obtained from the constructors, which return validation errors from the
// errs package.
package kernel
