package polynomial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-polynomial/field"
)

func totient(n int) int {
	count := 0
	for k := 1; k <= n; k++ {
		a, b := k, n
		for b != 0 {
			a, b = b, a%b
		}

		if a == 1 {
			count++
		}
	}

	return count
}

func TestCyclotomic(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		n    int
		want []float64
	}{
		{1, []float64{-1, 1}},
		{2, []float64{1, 1}},
		{3, []float64{1, 1, 1}},
		{4, []float64{1, 0, 1}},
		{5, []float64{1, 1, 1, 1, 1}},
		{6, []float64{1, -1, 1}},
		{8, []float64{1, 0, 0, 0, 1}},
		{9, []float64{1, 0, 0, 1, 0, 0, 1}},
		{12, []float64{1, 0, -1, 0, 1}},
		{15, []float64{1, -1, 0, 1, -1, 1, 0, -1, 1}},
	}

	for _, tt := range tests {
		p, err := Cyclotomic(field.Reals, tt.n)
		a.NoError(err)
		a.Equal(tt.want, p.Coeffs(), "Φ_%d", tt.n)
	}

	for n := 1; n <= 40; n++ {
		p, err := Cyclotomic(field.Reals, n)
		a.NoError(err)
		a.Equal(totient(n), p.Degree(), "deg Φ_%d", n)
	}

	_, err := Cyclotomic(field.Reals, 0)
	a.ErrorIs(err, ErrInvalidOrder)

	_, err = Cyclotomic(field.Reals, -3)
	a.ErrorIs(err, ErrInvalidOrder)
}

func TestCyclotomicModular(t *testing.T) {
	a := assert.New(t)

	f, err := field.NewZModulePrime(17)
	a.NoError(err)

	phi8, err := Cyclotomic[field.Elem](f, 8)
	a.NoError(err)

	w, err := f.RootOfUnity(8)
	a.NoError(err)

	// every odd power of a primitive 8th root is primitive.
	for k := uint64(1); k < 8; k += 2 {
		a.True(phi8.Eval(w.Pow(k)).Equal(f.Zero()))
	}

	w4, err := f.RootOfUnity(4)
	a.NoError(err)
	a.Equal(uint64(2), phi8.Eval(w4).Value())
}
