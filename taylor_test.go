package polynomial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-polynomial/field"
)

func TestTaylor(t *testing.T) {
	a := assert.New(t)

	t.Run("exp", func(t *testing.T) {
		derivs := make([]float64, 15)
		for i := range derivs {
			derivs[i] = 1
		}

		p, err := Taylor(field.Reals, 0, derivs)
		a.NoError(err)
		a.Equal(14, p.Degree())
		a.InDelta(math.E, p.Eval(1), 1e-6)
		a.InDelta(math.Exp(-0.5), p.Eval(-0.5), 1e-6)
	})

	t.Run("sin", func(t *testing.T) {
		derivs := make([]float64, 12)
		for i := range derivs {
			derivs[i] = []float64{0, 1, 0, -1}[i%4]
		}

		p, err := Taylor(field.Reals, 0, derivs)
		a.NoError(err)
		a.InDelta(math.Sin(0.7), p.Eval(0.7), 1e-6)
	})

	t.Run("shifted", func(t *testing.T) {
		// x^2 around 1: f(1) = 1, f'(1) = 2, f''(1) = 2.
		p, err := Taylor(field.Reals, 1, []float64{1, 2, 2})
		a.NoError(err)
		a.Equal([]float64{0, 0, 1}, p.Coeffs())
	})

	t.Run("constant", func(t *testing.T) {
		p, err := Taylor(field.Reals, 3, []float64{7})
		a.NoError(err)
		a.Equal([]float64{7}, p.Coeffs())

		_, err = Taylor(field.Reals, 3, nil)
		a.ErrorIs(err, field.ErrEmptyCoefficients)
	})

	t.Run("modular", func(t *testing.T) {
		f, err := field.NewZModulePrime(5)
		a.NoError(err)

		p, err := Taylor[field.Elem](f, f.Zero(), f.Elems(1, 1, 1))
		a.NoError(err)
		// 1 + x + x^2/2, with 1/2 = 3 mod 5.
		a.Equal(uint64(3), p.Coeff(2).Value())

		_, err = Taylor[field.Elem](f, f.Zero(), f.Elems(1, 1, 1, 1, 1, 1))
		a.ErrorIs(err, field.ErrDomain)
	})
}
