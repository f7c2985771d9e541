package field

import (
	"errors"
	"fmt"
)

// Ring is the set of operations a coefficient type has to provide to be used
// inside a Polynomial. A Ring value describes the structure (e.g. the modulus
// of Z/NZ), while E is the type of its elements.
//
// Inverse is part of every Ring: rings that are not fields return an error
// wrapping ErrDomain for elements that are not units.
type Ring[E any] interface {
	Zero() E
	One() E
	FromInt64(v int64) E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Neg(a E) E
	Inverse(a E) (E, error)

	Equal(a, b E) bool
	IsZero(a E) bool
}

var (
	ErrDomain            = errors.New("element has no multiplicative inverse")
	ErrEmptyCoefficients = errors.New("polynomial needs at least one coefficient")
	ErrDivisionByZero    = errors.New("division by the zero polynomial")
	ErrNotConverged      = errors.New("iteration did not converge")

	ErrPointsSizeMismatch = errors.New("points size mismatch")
	ErrNonUniqueXs        = errors.New("non-unique x values")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrRingMismatch       = errors.New("operands belong to different rings")
)

// modular rings tell their instances apart by modulus.
type modulusRing interface {
	Modulus() uint64
}

// sameRing reports whether a and b describe the same ring. Rings exposing a
// modulus are compared by it; every other ring type has a single instance.
func sameRing[E any](a, b Ring[E]) bool {
	ma, okA := a.(modulusRing)
	mb, okB := b.(modulusRing)

	if okA && okB {
		return ma.Modulus() == mb.Modulus()
	}

	return okA == okB
}

// RealField is the field of float64 numbers.
type RealField struct{}

// Reals is the Ring of float64 coefficients.
var Reals RealField

func (RealField) Zero() float64             { return 0 }
func (RealField) One() float64              { return 1 }
func (RealField) FromInt64(v int64) float64 { return float64(v) }
func (RealField) Add(a, b float64) float64  { return a + b }
func (RealField) Sub(a, b float64) float64  { return a - b }
func (RealField) Mul(a, b float64) float64  { return a * b }
func (RealField) Neg(a float64) float64     { return -a }

func (RealField) Inverse(a float64) (float64, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: 1/0", ErrDomain)
	}

	return 1 / a, nil
}

// Equal is exact. Callers that compare computed values must apply their own tolerance.
func (RealField) Equal(a, b float64) bool { return a == b }
func (RealField) IsZero(a float64) bool   { return a == 0 }

// ComplexField is the field of complex128 numbers.
type ComplexField struct{}

// Complexes is the Ring of complex128 coefficients.
var Complexes ComplexField

func (ComplexField) Zero() complex128               { return 0 }
func (ComplexField) One() complex128                { return 1 }
func (ComplexField) FromInt64(v int64) complex128   { return complex(float64(v), 0) }
func (ComplexField) Add(a, b complex128) complex128 { return a + b }
func (ComplexField) Sub(a, b complex128) complex128 { return a - b }
func (ComplexField) Mul(a, b complex128) complex128 { return a * b }
func (ComplexField) Neg(a complex128) complex128    { return -a }

func (ComplexField) Inverse(a complex128) (complex128, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: 1/0", ErrDomain)
	}

	return 1 / a, nil
}

func (ComplexField) Equal(a, b complex128) bool { return a == b }
func (ComplexField) IsZero(a complex128) bool   { return a == 0 }
