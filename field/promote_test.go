package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	a := assert.New(t)

	p := MustPolynomial(Reals, 1, 0, 1)
	p.SetVariable('z')

	c := ToComplex(p)
	a.Equal([]complex128{1, 0, 1}, c.Coeffs())
	a.Equal('z', c.Variable())

	// x^2 + 1 vanishes at i.
	a.Equal(complex128(0), c.Eval(1i))
	a.Equal(complex128(0), EvalAt(p, Complexes, func(x float64) complex128 { return complex(x, 0) }, -1i))

	f := mustPrime(t, 157)
	m := Convert(MustPolynomial(Reals, -1, 2, 3), Ring[Elem](f), func(x float64) Elem { return f.FromInt64(int64(x)) })
	a.Equal([]uint64{156, 2, 3}, values(m))
}

func TestCastPolynomial(t *testing.T) {
	a := assert.New(t)

	f := mustPrime(t, 157)
	z, err := NewZModule(7)
	a.NoError(err)

	p := zpoly(f, 10, 3, 14)
	q := CastPolynomial(p, z)

	a.Equal([]uint64{3, 3}, values(q))
	a.Equal(uint64(7), q.Coeff(0).Modulus())
	a.Equal(uint64(157), p.Coeff(0).Modulus())
}
