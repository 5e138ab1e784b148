// Package product contains the Product aggregate.
//
// A product carries a display name and a positive decimal price. Unlike the
// client CPF there is no uniqueness constraint; two products may share a name.
package product
