package field

// Convert maps every coefficient of p into the ring to with conv.
func Convert[A, B any](p *Polynomial[A], to Ring[B], conv func(A) B) *Polynomial[B] {
	out := make([]B, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = conv(c)
	}

	q := fromInner(to, out)
	q.variable = p.variable

	return q
}

// ToComplex lifts a real polynomial into the complex numbers.
func ToComplex(p *Polynomial[float64]) *Polynomial[complex128] {
	return Convert(p, Complexes, func(c float64) complex128 { return complex(c, 0) })
}

// CastPolynomial re-reduces every coefficient of p modulo the modulus of to.
func CastPolynomial(p *Polynomial[Elem], to *ZModule) *Polynomial[Elem] {
	return Convert(p, Ring[Elem](to), to.Cast)
}

// EvalAt evaluates p at a point of another ring, lifting the coefficients
// with lift first. For example, a real polynomial at a complex point.
func EvalAt[E, X any](p *Polynomial[E], target Ring[X], lift func(E) X, x X) X {
	return Convert(p, target, lift).Eval(x)
}
