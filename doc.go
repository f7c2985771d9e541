// Package polynomial holds the algorithms built on top of field.Polynomial
// that are not plain ring arithmetic: numeric root finding, Taylor expansion,
// cyclotomic polynomials and square-free reduction.
//
// The coefficient rings and the Polynomial type itself live in the field
// package.
package polynomial
