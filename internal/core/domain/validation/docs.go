// Package validation implements the composable input validation framework.
//
// A validator is a pure function from a value to a Result and never touches
// storage. Primitive validators (name, price, CPF) each check a single
// responsibility; entity-level validators compose them and report every
// violated rule in one pass instead of stopping at the first failure, so a
// caller sees all problems with its input in a single round trip.
//
// CompositeValidator generalizes the composition: any number of validators of
// the same input type run in registration order and their error strings are
// concatenated.
package validation
