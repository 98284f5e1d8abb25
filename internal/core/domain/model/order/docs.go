// Package order provides the Order aggregate root of the dispatch domain.
//
// The package includes:
//   - Order: identity, destination, weight and lifecycle of a delivery order
//   - Status: the Created -> Assigned -> Completed state machine
//
// Key business rules:
//   - Orders have a caller-supplied identifier, a location and a positive weight
//   - Only a Created order can be assigned, and only to a Ready courier
//   - Assignment records the courier id and puts the courier in work
//   - Orders can only be completed when Assigned; Completed is terminal
package order
