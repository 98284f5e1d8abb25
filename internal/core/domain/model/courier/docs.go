// Package courier provides the Courier aggregate root of the dispatch domain.
//
// The package includes:
//   - Courier: identity, grid position, transport and availability of a courier
//   - Transport: the closed catalog of vehicle profiles (speed and capacity)
//   - Status: the NotAvailable, Ready and Busy availability state machine
//
// Key business rules:
//   - Couriers start at the grid's minimum location and are NotAvailable
//   - A courier moves at most Transport().Speed() cells per step, X axis first
//   - Only a Ready courier can be put in work
//   - A Busy courier cannot start or stop working
//
// Order assignment lives in the order package; this package never imports it.
package courier
