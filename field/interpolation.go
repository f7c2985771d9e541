package field

import "fmt"

type Interpolator[E any] struct {
	r Ring[E]
}

func NewInterpolator[E any](r Ring[E]) *Interpolator[E] {
	return &Interpolator[E]{r: r}
}

// Interpolation code follows the Lagrange interpolation method
// https://en.wikipedia.org/wiki/Lagrange_polynomial
// This algorithm is optimise to save on operations. It is O(n^2) in total.
// The algorithm is as follows:
// 1. Create m(x) = \prod_{0\le i \le n} m_i(x) = \prod_{0\le i \le n} (x - x_i)
// 2. For each i, create q_i(x) = m(x) / m_i(x) by synthetic division.
// 3. then from each q_i create l_i by multiplying q_i by the inverse of q_i(x_i).
// 4. Finally, sum all l_i* y_i to get the polynomial.
func (intr *Interpolator[E]) Interpolate(xs, ys []E) (*Polynomial[E], error) {
	if err := validateInterpolationPoints(intr.r, xs, ys); err != nil {
		return nil, err
	}

	miSlice := intr.createMiSlice(xs)
	m := PolyProduct(intr.r, miSlice)

	out := make([]E, len(xs))
	for i := range out {
		out[i] = intr.r.Zero()
	}

	for i := range miSlice {
		li, err := intr.basis(m, xs, i)
		if err != nil {
			return nil, err
		}

		for j, c := range li.coeffs {
			out[j] = intr.r.Add(out[j], intr.r.Mul(c, ys[i]))
		}
	}

	return fromInner(intr.r, out), nil
}

// basis returns l_i(x) = q_i(x) / q_i(x_i) with q_i = m / (x - x_i).
func (intr *Interpolator[E]) basis(m *Polynomial[E], xs []E, i int) (*Polynomial[E], error) {
	qi := intr.mDivMi(m, xs[i])

	// \prod_{j\ne i} (x_i - x_j)
	sinv, err := intr.r.Inverse(qi.Eval(xs[i]))
	if err != nil {
		return nil, fmt.Errorf("basis %d: %w", i, err)
	}

	return qi.MulScalarInPlace(sinv), nil
}

// createMiSlice creates the m_i(x) = (x - x_i) polynomials.
func (intr *Interpolator[E]) createMiSlice(xs []E) []*Polynomial[E] {
	miSlice := make([]*Polynomial[E], len(xs))

	for i, x := range xs {
		miSlice[i] = fromInner(intr.r, []E{intr.r.Neg(x), intr.r.One()})
	}

	return miSlice
}

/*
mDivMi divides m by (x - ui). This is quicker than the long division method
since the divisor is monic of degree 1, and that we don't have a remainder.
*/
func (intr *Interpolator[E]) mDivMi(m *Polynomial[E], ui E) *Polynomial[E] {
	r := intr.r
	if len(m.coeffs) < 2 {
		return Zero(r)
	}

	qinner := make([]E, len(m.coeffs)-1)

	carry := r.Zero()
	for i := len(m.coeffs) - 1; i > 0; i-- {
		qinner[i-1] = r.Add(m.coeffs[i], carry)
		carry = r.Mul(qinner[i-1], ui)
	}

	return fromInner(r, qinner)
}

func validateInterpolationPoints[E any](r Ring[E], xs, ys []E) error {
	if len(xs) != len(ys) {
		return ErrPointsSizeMismatch
	}

	if len(xs) == 0 {
		return ErrEmptyCoefficients
	}

	return validateNodes(r, xs)
}

// validateNodes is quadratic: E has no ordering or hash in general.
func validateNodes[E any](r Ring[E], xs []E) error {
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if r.Equal(xs[i], xs[j]) {
				return ErrNonUniqueXs
			}
		}
	}

	return nil
}

// LagrangeBase returns the i-th Lagrange basis polynomial over nodes:
// \prod_{j\ne i} (x - x_j) / (x_i - x_j).
func LagrangeBase[E any](r Ring[E], nodes []E, i int) (*Polynomial[E], error) {
	if i < 0 || i >= len(nodes) {
		return nil, ErrIndexOutOfRange
	}

	if err := validateNodes(r, nodes); err != nil {
		return nil, err
	}

	intr := NewInterpolator(r)
	m := PolyProduct(r, intr.createMiSlice(nodes))

	return intr.basis(m, nodes, i)
}

// LagrangeFunc interpolates f at the given nodes.
func LagrangeFunc[E any](r Ring[E], nodes []E, f func(E) E) (*Polynomial[E], error) {
	ys := make([]E, len(nodes))
	for i, x := range nodes {
		ys[i] = f(x)
	}

	return NewInterpolator(r).Interpolate(nodes, ys)
}
