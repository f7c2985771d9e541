package polynomial

import "github.com/jonathanmweiss/go-polynomial/field"

// Reduced returns the monic square-free part of p, p / gcd(p, p'), which has
// the same roots as p, each with multiplicity one.
//
// In positive characteristic p' may vanish (x^5 over Z/5Z); the result is then 1.
func Reduced[E any](p *field.Polynomial[E]) (*field.Polynomial[E], error) {
	if p.IsZero() {
		return p.Copy(), nil
	}

	g, err := field.GCD(p, p.Derivative())
	if err != nil {
		return nil, err
	}

	q, err := p.Div(g)
	if err != nil {
		return nil, err
	}

	return q.Monic()
}
