package field

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlowEvaluator(t *testing.T) {
	a := assert.New(t)
	f := mustPrime(t, 65537)

	ev := NewSlowEvaluator[Elem](f)
	p := randomPolynomial(f, 3, 20)

	xs, err := ev.EvaluationPoints(25)
	a.NoError(err)
	a.Len(xs, 25)
	a.Equal(uint64(1), xs[0].Value())
	a.Equal(uint64(25), xs[24].Value())

	again, err := ev.EvaluationPoints(25)
	a.NoError(err)
	a.Same(&xs[0], &again[0])

	ys, err := ev.EvaluatePolynomial(p, 25)
	a.NoError(err)

	for i, x := range xs {
		a.True(p.Eval(x).Equal(ys[i]))
	}

	back, err := ev.Interpolate(ys)
	a.NoError(err)
	a.True(p.Equals(back))

	l, err := ev.LocatorPolynomial(25)
	a.NoError(err)
	a.Equal(25, l.Degree())

	for _, x := range xs {
		a.True(l.Eval(x).Equal(f.Zero()))
	}

	_, err = ev.EvaluationPoints(0)
	a.ErrorIs(err, errNonPositivePoints)

	_, err = ev.Interpolate(nil)
	a.ErrorIs(err, ErrEmptyCoefficients)
}

func TestSlowEvaluatorWrapsAround(t *testing.T) {
	a := assert.New(t)
	f := mustPrime(t, 5)

	ev := NewSlowEvaluator[Elem](f)

	// 1..5 over Z/5Z hits 0 and then repeats.
	_, err := ev.Interpolate(f.Elems(1, 2, 3, 4, 0, 1))
	a.ErrorIs(err, ErrNonUniqueXs)
}

func TestSlowEvaluatorReals(t *testing.T) {
	a := assert.New(t)

	ev := NewSlowEvaluator(Reals)
	p := MustPolynomial(Reals, 1, 0, 1)

	ys, err := ev.EvaluatePolynomial(p, 3)
	a.NoError(err)
	a.Equal([]float64{2, 5, 10}, ys)

	back, err := ev.Interpolate(ys)
	a.NoError(err)
	a.InDeltaSlice([]float64{1, 0, 1}, back.Coeffs(), 1e-9)
}

func TestNttEvaluator(t *testing.T) {
	a := assert.New(t)
	f := mustPrime(t, 65537)

	ev := NewNttEvaluator(f)

	for _, n := range []int{1, 2, 8, 64} {
		xs, err := ev.EvaluationPoints(n)
		a.NoError(err)
		a.Len(xs, n)
		a.Equal(uint64(1), xs[0].Value())

		if n > 1 {
			w, err := f.RootOfUnity(uint64(n))
			a.NoError(err)
			a.True(w.Equal(xs[1]))
		}

		// longer than n: the folded evaluation still matches Horner.
		p := randomPolynomial(f, uint64(n), 3*n)

		ys, err := ev.EvaluatePolynomial(p, n)
		a.NoError(err)

		for i, x := range xs {
			a.True(p.Eval(x).Equal(ys[i]), "n=%d i=%d", n, i)
		}

		l, err := ev.LocatorPolynomial(n)
		a.NoError(err)
		a.True(l.Equals(FromRoots[Elem](f, xs)))

		q := randomPolynomial(f, uint64(n)+100, n)

		vals, err := ev.EvaluatePolynomial(q, n)
		a.NoError(err)

		back, err := ev.Interpolate(vals)
		a.NoError(err)
		a.True(q.Equals(back))
	}
}

func TestNttEvaluatorErrors(t *testing.T) {
	a := assert.New(t)

	ev := NewNttEvaluator(mustPrime(t, 65537))

	_, err := ev.EvaluationPoints(6)
	a.ErrorIs(err, ErrNotPowerOfTwo)

	_, err = ev.EvaluatePolynomial(zpoly(ev.f, 1, 2), 0)
	a.ErrorIs(err, errNonPositivePoints)

	_, err = ev.LocatorPolynomial(12)
	a.ErrorIs(err, ErrNotPowerOfTwo)

	_, err = ev.Interpolate(ev.f.Elems(1, 2, 3))
	a.ErrorIs(err, ErrNotPowerOfTwo)

	// 157 - 1 = 4 * 39.
	small := NewNttEvaluator(mustPrime(t, 157))

	_, err = small.EvaluationPoints(8)
	a.ErrorIs(err, ErrNotDivisible)
}

func TestEvaluatorCacheConcurrent(t *testing.T) {
	a := assert.New(t)

	ev := NewNttEvaluator(mustPrime(t, 65537))

	var wg sync.WaitGroup

	results := make([][]Elem, 16)
	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			xs, err := ev.EvaluationPoints(32)
			a.NoError(err)

			results[i] = xs
		}(i)
	}

	wg.Wait()

	for _, xs := range results[1:] {
		a.Equal(results[0], xs)
	}
}

func BenchmarkEvaluators(b *testing.B) {
	f := mustPrime(b, 65537)
	p := randomPolynomial(f, 1, 255)

	b.Run("slow", func(b *testing.B) {
		ev := NewSlowEvaluator[Elem](f)
		for range b.N {
			if _, err := ev.EvaluatePolynomial(p, 256); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("ntt", func(b *testing.B) {
		ev := NewNttEvaluator(f)
		for range b.N {
			if _, err := ev.EvaluatePolynomial(p, 256); err != nil {
				b.Fatal(err)
			}
		}
	})
}
