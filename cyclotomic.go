package polynomial

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-polynomial/field"
)

var ErrInvalidOrder = errors.New("cyclotomic order must be >= 1")

// Cyclotomic returns the n-th cyclotomic polynomial, the monic polynomial
// whose roots are the primitive n-th roots of unity:
//
//	Φ_n(x) = (x^n - 1) / \prod_{d | n, d < n} Φ_d(x)
//
// Every Φ_d is monic, so the divisions are exact over any ring.
func Cyclotomic[E any](r field.Ring[E], n int) (*field.Polynomial[E], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, n)
	}

	phi := make(map[int]*field.Polynomial[E])

	for d := 1; d <= n; d++ {
		if n%d != 0 {
			continue
		}

		p, err := xPowMinusOne(r, d)
		if err != nil {
			return nil, err
		}

		for e := 1; e < d; e++ {
			if d%e != 0 {
				continue
			}

			if p, err = p.Div(phi[e]); err != nil {
				return nil, err
			}
		}

		phi[d] = p
	}

	return phi[n], nil
}

// xPowMinusOne returns x^d - 1.
func xPowMinusOne[E any](r field.Ring[E], d int) (*field.Polynomial[E], error) {
	p := field.Constant(r, r.Neg(r.One()))
	if err := p.SetCoeff(d, r.One()); err != nil {
		return nil, err
	}

	return p, nil
}
