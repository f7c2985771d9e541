package polynomial

import (
	"fmt"

	"github.com/jonathanmweiss/go-polynomial/field"
)

// Taylor returns \sum_k derivs[k]/k! (x-a)^k, where derivs[k] is the k-th
// derivative of some function at a.
//
// Over Z/NZ the factorials must stay invertible, which bounds the number of
// terms by the smallest prime factor of N.
func Taylor[E any](r field.Ring[E], a E, derivs []E) (*field.Polynomial[E], error) {
	if len(derivs) == 0 {
		return nil, field.ErrEmptyCoefficients
	}

	ret := field.Constant(r, derivs[0])
	power := field.One(r)
	shift := field.MustPolynomial(r, r.Neg(a), r.One()) // x - a

	fact := r.One()
	for k := 1; k < len(derivs); k++ {
		power.MulInPlace(shift)
		fact = r.Mul(fact, r.FromInt64(int64(k)))

		inv, err := r.Inverse(fact)
		if err != nil {
			return nil, fmt.Errorf("taylor term %d: %w", k, err)
		}

		ret.AddInPlace(power.MulScalar(r.Mul(derivs[k], inv)))
	}

	return ret, nil
}
