// Package bn254 exposes the scalar field of the BN254 curve as a coefficient
// ring for field.Polynomial.
package bn254

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/jonathanmweiss/go-polynomial/field"
)

// Field wraps fr.Element arithmetic to conform to field.Ring.
type Field struct{}

// Scalars is the BN254 scalar field.
var Scalars Field

var _ field.Ring[fr.Element] = Field{}

func (Field) Zero() fr.Element { return fr.Element{} }

func (Field) One() fr.Element {
	var z fr.Element
	z.SetOne()

	return z
}

func (Field) FromInt64(v int64) fr.Element {
	var z fr.Element
	z.SetInt64(v)

	return z
}

// Add x + y
func (Field) Add(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Add(&x, &y)

	return z
}

// Sub x - y
func (Field) Sub(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&x, &y)

	return z
}

// Mul x * y
func (Field) Mul(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&x, &y)

	return z
}

func (Field) Neg(x fr.Element) fr.Element {
	var z fr.Element
	z.Neg(&x)

	return z
}

// Inverse x⁻¹. fr returns 0 for 0, which is reported as a domain error instead.
func (Field) Inverse(x fr.Element) (fr.Element, error) {
	if x.IsZero() {
		return fr.Element{}, fmt.Errorf("%w: 1/0 in bn254 fr", field.ErrDomain)
	}

	var z fr.Element
	z.Inverse(&x)

	return z, nil
}

func (Field) Equal(x, y fr.Element) bool { return x.Equal(&y) }
func (Field) IsZero(x fr.Element) bool   { return x.IsZero() }

// NewPolynomial builds a polynomial over fr from small integer coefficients.
func NewPolynomial(coeffs ...int64) (*field.Polynomial[fr.Element], error) {
	elems := make([]fr.Element, len(coeffs))
	for i, c := range coeffs {
		elems[i] = Scalars.FromInt64(c)
	}

	return field.NewPolynomial[fr.Element](Scalars, elems)
}
