// Package dispatching chooses which courier receives an order.
//
// Selection is a policy of the application layer: the domain model exposes
// what a courier can carry and how long it needs to reach a location, and
// Dispatcher combines those into a choice before calling
// order.AssignToCourier.
package dispatching
