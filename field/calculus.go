package field

import "fmt"

// Pow returns p^n. p^0 is the constant 1, including for the zero polynomial.
func (p *Polynomial[E]) Pow(n uint) *Polynomial[E] {
	return p.Copy().PowInPlace(n)
}

func (p *Polynomial[E]) PowInPlace(n uint) *Polynomial[E] {
	base := p.Copy()

	p.coeffs = []E{p.r.One()}
	for n > 0 {
		if n&1 == 1 {
			p.MulInPlace(base)
		}

		n >>= 1
		if n > 0 {
			base.MulInPlace(base)
		}
	}

	return p
}

// Derivative returns dp/dx.
func (p *Polynomial[E]) Derivative() *Polynomial[E] {
	return p.Copy().DifferentiateInPlace()
}

func (p *Polynomial[E]) DifferentiateInPlace() *Polynomial[E] {
	if len(p.coeffs) == 1 {
		p.coeffs[0] = p.r.Zero()
		return p
	}

	for i := 1; i < len(p.coeffs); i++ {
		p.coeffs[i-1] = p.r.Mul(p.coeffs[i], p.r.FromInt64(int64(i)))
	}

	p.coeffs = p.coeffs[:len(p.coeffs)-1]
	p.normalize()

	return p
}

// Integral returns the antiderivative of p whose constant term is c.
func (p *Polynomial[E]) Integral(c E) (*Polynomial[E], error) {
	q := p.Copy()
	if err := q.IntegrateInPlace(c); err != nil {
		return nil, err
	}

	return q, nil
}

// IntegrateInPlace replaces p by its antiderivative with constant term c.
// Over Z/NZ this fails with ErrDomain once the degree reaches a multiple of a
// prime factor of N. p is left untouched on error.
func (p *Polynomial[E]) IntegrateInPlace(c E) error {
	r := p.r

	if p.IsZero() {
		p.coeffs[0] = c
		return nil
	}

	n := len(p.coeffs)

	invs := make([]E, n+1)
	for i := 1; i <= n; i++ {
		inv, err := r.Inverse(r.FromInt64(int64(i)))
		if err != nil {
			return fmt.Errorf("integrating x^%d: %w", i-1, err)
		}

		invs[i] = inv
	}

	out := make([]E, n+1)
	out[0] = c

	for i, a := range p.coeffs {
		out[i+1] = r.Mul(a, invs[i+1])
	}

	p.coeffs = out
	p.normalize()

	return nil
}

// IntegralThrough returns the antiderivative F of p with F(x) == y.
func (p *Polynomial[E]) IntegralThrough(x, y E) (*Polynomial[E], error) {
	f, err := p.Integral(p.r.Zero())
	if err != nil {
		return nil, err
	}

	return f.AddScalarInPlace(p.r.Sub(y, f.Eval(x))), nil
}

// DefiniteIntegral returns F(hi) - F(lo) for an antiderivative F of p.
func (p *Polynomial[E]) DefiniteIntegral(lo, hi E) (E, error) {
	f, err := p.Integral(p.r.Zero())
	if err != nil {
		var zero E
		return zero, err
	}

	return p.r.Sub(f.Eval(hi), f.Eval(lo)), nil
}
