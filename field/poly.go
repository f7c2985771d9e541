package field

import (
	"fmt"
	"iter"
	"slices"
)

const defaultVariable = 'x'

// Polynomial is a dense univariate polynomial over the ring r.
//
// Coefficients are ordered from lowest to highest degree (e.g. [1, 2, 3] is
// 1 + 2x + 3x^2). The slice is never empty and, unless the polynomial is a
// constant, its last entry is never zero. The zero polynomial is a single
// zero coefficient, and has degree 0.
type Polynomial[E any] struct {
	r        Ring[E]
	coeffs   []E
	variable rune
}

// NewPolynomial copies coeffs and trims trailing zero coefficients.
func NewPolynomial[E any](r Ring[E], coeffs []E) (*Polynomial[E], error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoefficients
	}

	inner := make([]E, len(coeffs))
	copy(inner, coeffs)

	return fromInner(r, inner), nil
}

// MustPolynomial is like NewPolynomial but panics on an empty coefficient list.
func MustPolynomial[E any](r Ring[E], coeffs ...E) *Polynomial[E] {
	p, err := NewPolynomial(r, coeffs)
	if err != nil {
		panic(err)
	}

	return p
}

// FromSeq collects the coefficients yielded by seq, lowest degree first.
func FromSeq[E any](r Ring[E], seq iter.Seq[E]) (*Polynomial[E], error) {
	return NewPolynomial(r, slices.Collect(seq))
}

func Zero[E any](r Ring[E]) *Polynomial[E] {
	return Constant(r, r.Zero())
}

func One[E any](r Ring[E]) *Polynomial[E] {
	return Constant(r, r.One())
}

func Constant[E any](r Ring[E], c E) *Polynomial[E] {
	return &Polynomial[E]{r: r, coeffs: []E{c}, variable: defaultVariable}
}

// fromInner takes ownership of inner.
func fromInner[E any](r Ring[E], inner []E) *Polynomial[E] {
	p := &Polynomial[E]{r: r, coeffs: inner, variable: defaultVariable}
	p.normalize()

	return p
}

func (p *Polynomial[E]) normalize() {
	n := len(p.coeffs)
	for n > 1 && p.r.IsZero(p.coeffs[n-1]) {
		n--
	}

	p.coeffs = p.coeffs[:n]
}

func (p *Polynomial[E]) grow(n int) {
	if len(p.coeffs) >= n {
		return
	}

	tmp := make([]E, n)
	copy(tmp, p.coeffs)

	for i := len(p.coeffs); i < n; i++ {
		tmp[i] = p.r.Zero()
	}

	p.coeffs = tmp
}

func (p *Polynomial[E]) Ring() Ring[E] {
	return p.r
}

func (p *Polynomial[E]) Degree() int {
	return len(p.coeffs) - 1
}

func (p *Polynomial[E]) IsZero() bool {
	return len(p.coeffs) == 1 && p.r.IsZero(p.coeffs[0])
}

// Coeff returns the coefficient of x^i, zero for i beyond the degree.
func (p *Polynomial[E]) Coeff(i int) E {
	if i < 0 || i >= len(p.coeffs) {
		return p.r.Zero()
	}

	return p.coeffs[i]
}

// SetCoeff sets the coefficient of x^i, growing the polynomial if needed.
// Setting the leading coefficient to zero lowers the degree.
func (p *Polynomial[E]) SetCoeff(i int, c E) error {
	if i < 0 {
		return ErrIndexOutOfRange
	}

	p.grow(i + 1)
	p.coeffs[i] = c
	p.normalize()

	return nil
}

// First returns the constant term.
func (p *Polynomial[E]) First() E {
	return p.coeffs[0]
}

// Last returns the leading coefficient.
func (p *Polynomial[E]) Last() E {
	return p.coeffs[len(p.coeffs)-1]
}

func (p *Polynomial[E]) LeadCoeff() E {
	return p.Last()
}

// All iterates over (power, coefficient) pairs, lowest power first.
func (p *Polynomial[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, c := range p.coeffs {
			if !yield(i, c) {
				return
			}
		}
	}
}

func (p *Polynomial[E]) Variable() rune {
	return p.variable
}

// SetVariable changes the symbol used when printing p.
func (p *Polynomial[E]) SetVariable(v rune) {
	p.variable = v
}

// mustShareRing panics with ErrRingMismatch when q lives in another ring than p.
func (p *Polynomial[E]) mustShareRing(q *Polynomial[E]) {
	if !sameRing(p.r, q.r) {
		panic(fmt.Errorf("%w: %v and %v", ErrRingMismatch, p.r, q.r))
	}
}

func (p *Polynomial[E]) Copy() *Polynomial[E] {
	innercopy := make([]E, len(p.coeffs))
	copy(innercopy, p.coeffs)

	return &Polynomial[E]{r: p.r, coeffs: innercopy, variable: p.variable}
}

// Coeffs returns a copy of the coefficients, lowest degree first.
func (p *Polynomial[E]) Coeffs() []E {
	list := make([]E, len(p.coeffs))
	copy(list, p.coeffs)

	return list
}

// Equals compares coefficients exactly. Polynomials over different rings are
// never equal. There is no tolerance for floating
// point rings: polynomials built through different paths may differ by
// rounding and compare unequal.
func (p *Polynomial[E]) Equals(q *Polynomial[E]) bool {
	if !sameRing(p.r, q.r) || len(p.coeffs) != len(q.coeffs) {
		return false
	}

	for i := range p.coeffs {
		if !p.r.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}

	return true
}

// Eval computes p(x) using Horner's rule.
func (p *Polynomial[E]) Eval(x E) E {
	r := p.r

	result := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		result = r.Add(p.coeffs[i], r.Mul(x, result))
	}

	return result
}
