package field

import "fmt"

// ---------- Poly ops ----------
//
// Every operation comes in two flavours: X returns a new polynomial and leaves
// the receiver untouched, XInPlace overwrites the receiver and returns it.
// Both operands must share a ring, otherwise the operation panics with
// ErrRingMismatch.

func (p *Polynomial[E]) Add(q *Polynomial[E]) *Polynomial[E] {
	return p.Copy().AddInPlace(q)
}

func (p *Polynomial[E]) AddInPlace(q *Polynomial[E]) *Polynomial[E] {
	p.mustShareRing(q)
	p.grow(len(q.coeffs))

	for i, c := range q.coeffs {
		p.coeffs[i] = p.r.Add(p.coeffs[i], c)
	}

	p.normalize()

	return p
}

func (p *Polynomial[E]) Sub(q *Polynomial[E]) *Polynomial[E] {
	return p.Copy().SubInPlace(q)
}

func (p *Polynomial[E]) SubInPlace(q *Polynomial[E]) *Polynomial[E] {
	p.mustShareRing(q)
	p.grow(len(q.coeffs))

	for i, c := range q.coeffs {
		p.coeffs[i] = p.r.Sub(p.coeffs[i], c)
	}

	p.normalize()

	return p
}

func (p *Polynomial[E]) Mul(q *Polynomial[E]) *Polynomial[E] {
	return p.Copy().MulInPlace(q)
}

func (p *Polynomial[E]) MulInPlace(q *Polynomial[E]) *Polynomial[E] {
	p.mustShareRing(q)

	r := p.r
	out := make([]E, len(p.coeffs)+len(q.coeffs)-1)

	for i := range out {
		out[i] = r.Zero()
	}

	// Schoolbook convolution: O(n*m), valid over any ring.
	// out[i+j] += a[i] * b[j]
	for i, ai := range p.coeffs {
		if r.IsZero(ai) {
			continue
		}

		for j, bj := range q.coeffs {
			out[i+j] = r.Add(out[i+j], r.Mul(ai, bj))
		}
	}

	// safe even if p == q since we wrote into out.
	p.coeffs = out
	p.normalize()

	return p
}

// Neg returns -p.
func (p *Polynomial[E]) Neg() *Polynomial[E] {
	return p.MulScalar(p.r.Neg(p.r.One()))
}

// ---------- scalar ops ----------

// AddScalar adds c to the constant term.
func (p *Polynomial[E]) AddScalar(c E) *Polynomial[E] {
	return p.Copy().AddScalarInPlace(c)
}

func (p *Polynomial[E]) AddScalarInPlace(c E) *Polynomial[E] {
	p.coeffs[0] = p.r.Add(p.coeffs[0], c)
	p.normalize()

	return p
}

// SubScalar subtracts c from the constant term.
func (p *Polynomial[E]) SubScalar(c E) *Polynomial[E] {
	return p.Copy().SubScalarInPlace(c)
}

func (p *Polynomial[E]) SubScalarInPlace(c E) *Polynomial[E] {
	p.coeffs[0] = p.r.Sub(p.coeffs[0], c)
	p.normalize()

	return p
}

func (p *Polynomial[E]) MulScalar(c E) *Polynomial[E] {
	return p.Copy().MulScalarInPlace(c)
}

func (p *Polynomial[E]) MulScalarInPlace(c E) *Polynomial[E] {
	for i := range p.coeffs {
		p.coeffs[i] = p.r.Mul(p.coeffs[i], c)
	}

	p.normalize()

	return p
}

// DivScalar multiplies every coefficient by the inverse of c.
func (p *Polynomial[E]) DivScalar(c E) (*Polynomial[E], error) {
	q := p.Copy()
	if err := q.DivScalarInPlace(c); err != nil {
		return nil, err
	}

	return q, nil
}

func (p *Polynomial[E]) DivScalarInPlace(c E) error {
	inv, err := p.r.Inverse(c)
	if err != nil {
		return err
	}

	p.MulScalarInPlace(inv)

	return nil
}

// ModScalar returns the remainder of p divided by the constant c, which is
// always the zero polynomial. c must not be zero.
func (p *Polynomial[E]) ModScalar(c E) (*Polynomial[E], error) {
	if p.r.IsZero(c) {
		return nil, ErrDivisionByZero
	}

	return Zero(p.r), nil
}

// Monic divides p by its leading coefficient.
func (p *Polynomial[E]) Monic() (*Polynomial[E], error) {
	if p.IsZero() {
		return p.Copy(), nil
	}

	return p.DivScalar(p.Last())
}

// ---------- division ----------

// Following Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard
//
// returns q, rem such that p = q*b + rem and deg(rem) < deg(b).
// Only the leading coefficient of b has to be invertible, so monic divisors
// work over any ring.
func (p *Polynomial[E]) LongDiv(b *Polynomial[E]) (q *Polynomial[E], rem *Polynomial[E], err error) {
	if !sameRing(p.r, b.r) {
		return nil, nil, fmt.Errorf("%w: %v and %v", ErrRingMismatch, p.r, b.r)
	}

	if b.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	r := p.r

	u, err := r.Inverse(b.Last())
	if err != nil {
		return nil, nil, fmt.Errorf("leading coefficient of divisor: %w", err)
	}

	n, m := p.Degree(), b.Degree()
	if n < m {
		return Zero(r), p.Copy(), nil
	}

	work := p.Coeffs()
	qInner := make([]E, n-m+1)

	for i := n - m; i >= 0; i-- {
		qInner[i] = r.Mul(work[m+i], u)

		if !r.IsZero(qInner[i]) {
			for j := 0; j < m; j++ {
				work[i+j] = r.Sub(work[i+j], r.Mul(qInner[i], b.coeffs[j]))
			}
		}

		// cancelled by construction; assigning avoids rounding residue on floats.
		work[m+i] = r.Zero()
	}

	return fromInner(r, qInner), fromInner(r, work[:max(m, 1)]), nil
}

// Div returns the quotient of p / b.
func (p *Polynomial[E]) Div(b *Polynomial[E]) (*Polynomial[E], error) {
	q, _, err := p.LongDiv(b)

	return q, err
}

// Mod returns the remainder of p / b.
func (p *Polynomial[E]) Mod(b *Polynomial[E]) (*Polynomial[E], error) {
	_, rem, err := p.LongDiv(b)

	return rem, err
}

// ---------- products ----------

// PolyProduct multiplies a slice of polynomials.
func PolyProduct[E any](r Ring[E], polys []*Polynomial[E]) *Polynomial[E] {
	m := One(r)
	for _, mi := range polys {
		m.MulInPlace(mi)
	}

	return m
}

// FromRoots computes \prod (x - r_i). The result is monic.
func FromRoots[E any](r Ring[E], roots []E) *Polynomial[E] {
	n := len(roots)

	coeffs := make([]E, n+1)
	for i := range coeffs {
		coeffs[i] = r.Zero()
	}
	coeffs[0] = r.One()

	deg := 0
	for _, root := range roots {
		neg := r.Neg(root)
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] = r.Add(coeffs[j+1], coeffs[j])
			// new[j]   = old[j] * (-r)
			coeffs[j] = r.Mul(coeffs[j], neg)
		}
		deg++
	}

	return fromInner(r, coeffs)
}
