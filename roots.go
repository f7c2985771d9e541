package polynomial

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"

	"github.com/jonathanmweiss/go-polynomial/field"
)

// ErrNotConverged is returned when the iteration cap is hit.
var ErrNotConverged = field.ErrNotConverged

// Roots returns every complex root of p, with multiplicity.
//
// Degree 1 and 2 use the closed forms. Higher degrees run Durand-Kerner on the
// monic form of p, and fail with ErrNotConverged if the estimates do not settle
// within the iteration cap. Constant polynomials, including zero, yield no roots.
//
// Repeated roots slow the iteration down to linear convergence: they settle
// loosely, and high multiplicities hit the cap. When roots may repeat, pass
// the polynomial through Reduced first.
func Roots(p *field.Polynomial[complex128], opts ...Option) ([]complex128, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	switch p.Degree() {
	case 0:
		return []complex128{}, nil
	case 1:
		return []complex128{-p.Coeff(0) / p.Coeff(1)}, nil
	case 2:
		a, b, c := p.Coeff(2), p.Coeff(1), p.Coeff(0)
		disc := cmplx.Sqrt(b*b - 4*a*c)

		return []complex128{(-b + disc) / (2 * a), (-b - disc) / (2 * a)}, nil
	}

	monic, err := p.Monic()
	if err != nil {
		return nil, err
	}

	return durandKerner(monic, cfg)
}

// RealRoots lifts p into the complex numbers and finds its roots there.
func RealRoots(p *field.Polynomial[float64], opts ...Option) ([]complex128, error) {
	return Roots(field.ToComplex(p), opts...)
}

// rootBounds returns lower and upper bounds on the magnitude of the roots of
// the monic polynomial p.
func rootBounds(p *field.Polynomial[complex128]) (lo, hi float64) {
	a0 := cmplx.Abs(p.First())

	sum, maxAbs := 0.0, 0.0
	for k, c := range p.All() {
		abs := cmplx.Abs(c)
		if k >= 1 {
			sum += abs
		}

		if k < p.Degree() {
			maxAbs = math.Max(maxAbs, abs)
		}
	}

	return a0 / (a0 + sum), 1 + maxAbs
}

func durandKerner(p *field.Polynomial[complex128], cfg *config) ([]complex128, error) {
	n := p.Degree()

	lo, hi := rootBounds(p)
	radius := (lo + hi) / 2

	cur := make([]complex128, n)
	for k := range cur {
		cur[k] = cmplx.Rect(radius, 2*math.Pi*float64(k)/float64(n)+cfg.phaseOffset)
	}

	next := make([]complex128, n)
	settled := bitset.New(uint(n))

	logger := cfg.logger.WithFields(log.Fields{"degree": n, "radius": radius})
	logger.Debug("durand-kerner: seeded")

	for iter := 1; iter <= cfg.maxIterations; iter++ {
		settled.ClearAll()

		for i, zi := range cur {
			den := complex(1, 0)
			for j, zj := range cur {
				if i != j {
					den *= zi - zj
				}
			}

			if den == 0 {
				// coincident estimates: step by the tolerance so they separate.
				den = complex(cfg.tolerance, cfg.tolerance)
			}

			next[i] = zi - p.Eval(zi)/den

			if cmplx.IsNaN(next[i]) || cmplx.IsInf(next[i]) {
				return nil, fmt.Errorf("%w: estimate %d diverged at iteration %d", ErrNotConverged, i, iter)
			}

			if cmplx.Abs(next[i]-zi) < cfg.tolerance {
				settled.Set(uint(i))
			}
		}

		cur, next = next, cur

		if settled.All() {
			logger.WithField("iterations", iter).Debug("durand-kerner: converged")
			return cur, nil
		}

		if iter%100 == 0 {
			logger.WithFields(log.Fields{"iteration": iter, "settled": settled.Count()}).Debug("durand-kerner: still iterating")
		}
	}

	return nil, fmt.Errorf("%w: %d estimates unsettled after %d iterations",
		ErrNotConverged, uint(n)-settled.Count(), cfg.maxIterations)
}
