package field

// GCD returns a greatest common divisor of a and b using the Euclidean
// algorithm. The result is not made monic; call Monic on it if needed.
// A zero operand yields a copy of the other one.
func GCD[E any](a, b *Polynomial[E]) (*Polynomial[E], error) {
	if a.IsZero() {
		return b.Copy(), nil
	}

	if b.IsZero() {
		return a.Copy(), nil
	}

	x, y := a.Copy(), b.Copy()
	for !y.IsZero() {
		rem, err := x.Mod(y)
		if err != nil {
			return nil, err
		}

		x, y = y, rem
	}

	return x, nil
}

// LCM returns (a / gcd(a, b)) * b.
func LCM[E any](a, b *Polynomial[E]) (*Polynomial[E], error) {
	g, err := GCD(a, b)
	if err != nil {
		return nil, err
	}

	if g.IsZero() {
		return Zero(a.r), nil
	}

	q, err := a.Div(g)
	if err != nil {
		return nil, err
	}

	return q.MulInPlace(b), nil
}

// ExtendedGCD returns g, x, y such that a*x + b*y == g, with g a greatest
// common divisor of a and b.
func ExtendedGCD[E any](a, b *Polynomial[E]) (g, x, y *Polynomial[E], err error) {
	return extendedEuclid(a, b, func(*Polynomial[E]) bool { return true })
}

// PartialExtendedEuclidean returns r, x, y such that a*x + b*y == r, stopping
// as soon as deg(r) < stopDegree.
func PartialExtendedEuclidean[E any](a, b *Polynomial[E], stopDegree int) (r, x, y *Polynomial[E], err error) {
	return extendedEuclid(a, b, func(A *Polynomial[E]) bool {
		return A.Degree() >= stopDegree && !A.IsZero()
	})
}

func extendedEuclid[E any](a, b *Polynomial[E], proceed func(*Polynomial[E]) bool) (g, x, y *Polynomial[E], err error) {
	ring := a.r

	A := a.Copy()
	B := b.Copy()

	// Invariants:
	//   A = x0*a + y0*b
	//   B = x1*a + y1*b
	x0, x1 := One(ring), Zero(ring)
	y0, y1 := Zero(ring), One(ring)

	for proceed(A) && !B.IsZero() {
		q, rem, err := A.LongDiv(B)
		if err != nil {
			return nil, nil, nil, err
		}

		A, B = B, rem

		// Bézout: (x0, x1) = (x1, x0 - q*x1), same for y.
		x0, x1 = x1, x0.SubInPlace(q.Mul(x1))
		y0, y1 = y1, y0.SubInPlace(q.Mul(y1))
	}

	return A, x0, y0, nil
}
