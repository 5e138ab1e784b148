// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order references a client and an ordered sequence of product references;
// a product referenced twice counts twice, which is how quantity is modeled.
// The client reference is deliberately not checked against client storage.
//
// The lifecycle is a small lattice: Created can move to Paid or Canceled, and
// both of those are terminal and mutually exclusive. Repeating a transition
// into the state the order is already in is an idempotent no-op; crossing
// between the terminal states is an invalid transition.
package order
