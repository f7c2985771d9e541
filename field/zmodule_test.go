package field

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

const largePrime = 9191248642791733759

func TestNewZModule(t *testing.T) {
	a := assert.New(t)

	_, err := NewZModule(1)
	a.ErrorIs(err, ErrModulusTooSmall)

	_, err = NewZModulePrime(0)
	a.ErrorIs(err, ErrModulusTooSmall)

	_, err = NewZModulePrime(12)
	a.ErrorIs(err, ErrNotPrime)

	_, err = NewZModulePrime(1<<63 + 1)
	a.ErrorIs(err, ErrPrimeTooLarge)

	z, err := NewZModule(12)
	a.NoError(err)
	a.Equal("Z/12Z", z.String())
	a.Equal(uint64(12), z.Modulus())

	f, err := NewZModulePrime(2)
	a.NoError(err)
	a.Equal(uint64(1), f.Generator().Value())
}

func TestFromInt64(t *testing.T) {
	a := assert.New(t)

	z, err := NewZModule(7)
	a.NoError(err)

	a.Equal(uint64(6), z.FromInt64(-1).Value())
	a.Equal(uint64(0), z.FromInt64(-14).Value())
	a.Equal(uint64(4), z.ElemFromInt64(-10).Value())
	a.Equal(uint64(3), z.FromInt64(10).Value())

	// -2^63 = -(7 * 1317624576693539401) - 1
	a.Equal(uint64(6), z.FromInt64(-1<<63).Value())
}

func TestElemOps(t *testing.T) {
	a := assert.New(t)

	z, err := NewZModule(10)
	a.NoError(err)

	t.Run("wrap", func(t *testing.T) {
		a.Equal(uint64(0), z.Elem(9).Inc().Value())

		dec, err := z.Elem(0).Dec()
		a.NoError(err)
		a.Equal(uint64(9), dec.Value())

		a.Equal(uint64(3), z.Elem(7).Add(z.Elem(6)).Value())
		a.Equal(uint64(8), z.Elem(3).Sub(z.Elem(5)).Value())
		a.Equal(uint64(2), z.Elem(4).Mul(z.Elem(8)).Value())
		a.Equal(uint64(7), z.Elem(3).Neg().Value())
		a.Equal(uint64(0), z.Elem(0).Neg().Value())
		a.Equal(uint64(8), z.Elem(2).Pow(3).Value())
		a.Equal(uint64(1), z.Elem(2).Pow(0).Value())
	})

	t.Run("compare", func(t *testing.T) {
		a.Equal(-1, z.Elem(3).Cmp(z.Elem(4)))
		a.Equal(0, z.Elem(14).Cmp(z.Elem(4)))
		a.Equal(1, z.Elem(5).Cmp(z.Elem(4)))

		other, err := NewZModule(11)
		a.NoError(err)

		a.True(z.Elem(4).Equal(z.Elem(14)))
		a.False(z.Elem(4).Equal(other.Elem(4)))
		a.Equal("4", z.Elem(14).String())
	})

	t.Run("cast", func(t *testing.T) {
		seven, err := NewZModule(7)
		a.NoError(err)

		e := seven.Cast(z.Elem(9))
		a.Equal(uint64(2), e.Value())
		a.Equal(uint64(7), e.Modulus())
	})

	t.Run("zero value", func(t *testing.T) {
		var e Elem
		a.Equal(uint64(5), e.Add(z.Elem(5)).Value())
		a.Equal(uint64(10), e.Add(z.Elem(5)).Modulus())

		_, err := e.Inverse()
		a.ErrorIs(err, ErrDomain)

		a.NotPanics(func() {
			a.True(e.Inc().Equal(z.One()))
			a.Equal(uint64(6), e.Inc().Add(z.Elem(5)).Value())
			a.True(e.Pow(3).Equal(z.Zero()))
			a.True(e.Pow(0).Equal(z.One()))

			_, err := e.Dec()
			a.ErrorIs(err, ErrDomain)
		})
	})

	t.Run("mixed moduli", func(t *testing.T) {
		seven, err := NewZModule(7)
		a.NoError(err)

		a.PanicsWithError(
			fmt.Sprintf("%v: Z/10Z and Z/7Z", ErrRingMismatch),
			func() { z.Elem(4).Add(seven.Elem(6)) },
		)
		a.Panics(func() { z.Elem(4).Mul(seven.Elem(6)) })

		_, err = z.Elem(3).Div(seven.Elem(2))
		a.ErrorIs(err, ErrRingMismatch)

		// same modulus, different instances.
		ten, err := NewZModule(10)
		a.NoError(err)
		a.Equal(uint64(1), z.Elem(4).Add(ten.Elem(7)).Value())
	})
}

func TestInverse(t *testing.T) {
	a := assert.New(t)

	t.Run("composite", func(t *testing.T) {
		z, err := NewZModule(12)
		a.NoError(err)

		_, err = z.Elem(4).Inverse()
		a.ErrorIs(err, ErrDomain)

		inv, err := z.Elem(5).Inverse()
		a.NoError(err)
		a.Equal(uint64(5), inv.Value())

		inv, err = z.Elem(7).Inverse()
		a.NoError(err)
		a.Equal(uint64(7), inv.Value())

		_, err = z.Elem(3).Div(z.Elem(6))
		a.ErrorIs(err, ErrDomain)
	})

	t.Run("search", func(t *testing.T) {
		z, err := NewZModule(101)
		a.NoError(err)

		for v := uint64(1); v < 101; v++ {
			want, err := z.Elem(v).Inverse()
			a.NoError(err)

			got, err := z.InverseBySearch(z.Elem(v), 101)
			a.NoError(err)
			a.Equal(want.Value(), got.Value())
		}

		_, err = z.InverseBySearch(z.Elem(100), 10)
		a.True(errors.Is(err, ErrNotConverged))

		_, err = z.InverseBySearch(z.Zero(), 10)
		a.ErrorIs(err, ErrDomain)

		z12, err := NewZModule(12)
		a.NoError(err)

		_, err = z12.InverseBySearch(z12.Elem(6), 100)
		a.ErrorIs(err, ErrDomain)
	})

	t.Run("prime", func(t *testing.T) {
		f, err := NewZModulePrime(157)
		a.NoError(err)

		q, err := f.Div(f.Elem(3), f.Elem(4))
		a.NoError(err)
		a.Equal(uint64(3), q.Mul(f.Elem(4)).Value())

		_, err = f.Div(f.Elem(3), f.Zero())
		a.ErrorIs(err, ErrDomain)
	})
}

func TestRootsOfUnity(t *testing.T) {
	a := assert.New(t)

	for _, p := range []uint64{3, 5, 17, 157, 65537, 998244353} {
		f, err := NewZModulePrime(p)
		a.NoError(err)

		g := f.Generator()
		a.False(g.Equal(f.Zero()), "generator mod %d", p)

		for _, q := range f.Factors() {
			a.NotEqual(uint64(1), g.Pow((p-1)/q).Value(), "generator mod %d", p)
		}

		for n := uint64(2); (p-1)%n == 0; n <<= 1 {
			w, err := f.RootOfUnity(n)
			a.NoError(err)

			a.Equal(uint64(1), w.Pow(n).Value())
			a.Equal(p-1, w.Pow(n/2).Value(), "w must be a primitive %d-th root mod %d", n, p)
		}
	}

	f, err := NewZModulePrime(157)
	a.NoError(err)

	_, err = f.RootOfUnity(8)
	a.ErrorIs(err, ErrNotDivisible)

	_, err = f.RootOfUnity(6)
	a.ErrorIs(err, ErrNotPowerOfTwo)

	_, err = f.RootOfUnity(1)
	a.Error(err)

	// the generator has order p-1.
	g := f.Generator()
	for _, q := range f.Factors() {
		a.NotEqual(uint64(1), g.Pow(156/q).Value())
	}
}

func TestCorrectOps(t *testing.T) {
	a := assert.New(t)

	f, err := NewZModulePrime(largePrime) // p > 2^62
	a.NoError(err)

	n := uint64((1 << 63) - 1)

	e1 := f.Elem(n)

	mod := new(big.Int).SetUint64(largePrime)

	e2 := new(big.Int).SetUint64(n)
	e2.Mul(e2, e2)
	e2.Mod(e2, mod)

	a.Equal(e2.Uint64(), e1.Mul(e1).Value())

	inv, err := e1.Inverse()
	a.NoError(err)
	a.Equal(uint64(1), e1.Mul(inv).Value())
}

func TestZModuleLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	z, err := NewZModule(largePrime - 1) // composite, close to 2^63
	if err != nil {
		t.Fatal(err)
	}

	mod := new(big.Int).SetUint64(z.Modulus())

	properties.Property("add matches big.Int", prop.ForAll(
		func(x, y uint64) bool {
			want := new(big.Int).Add(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
			want.Mod(want, mod)

			return z.Elem(x).Add(z.Elem(y)).Value() == want.Uint64()
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("mul matches big.Int", prop.ForAll(
		func(x, y uint64) bool {
			want := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
			want.Mod(want, mod)

			return z.Elem(x).Mul(z.Elem(y)).Value() == want.Uint64()
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("sub undoes add", prop.ForAll(
		func(x, y uint64) bool {
			return z.Elem(x).Add(z.Elem(y)).Sub(z.Elem(y)).Equal(z.Elem(x))
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t)
}

func FuzzInverse(f *testing.F) {
	testcases := []uint64{1, 54347, 4534523, 021310, 1<<63 - 1}
	for _, tc := range testcases {
		f.Add(tc) // Use f.Add to provide a seed corpus
	}

	fld, err := NewZModulePrime(largePrime)
	if err != nil {
		f.FailNow()
	}

	f.Fuzz(func(t *testing.T, num uint64) {
		e1 := fld.Elem(num)
		if e1.Value() == 0 {
			t.Skip()
		}

		e2, err := e1.Inverse()
		if err != nil {
			t.Fatal(err)
		}

		res := e1.Mul(e2)
		if res.Value() != 1 {
			t.Fatalf("expected 1, got %d", res.Value())
		}

		ne1 := e1.Neg()
		if ne1.Add(e1).Value() != uint64(0) {
			t.Fatalf("expected 0, got %d", ne1.Add(e1).Value())
		}
	})
}

func BenchmarkMulMod(b *testing.B) {
	f, err := NewZModulePrime(largePrime)
	if err != nil {
		b.FailNow()
	}

	e1 := f.Elem((1 << 63) - 2)
	e2 := f.Elem((1 << 60) + 312)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e1.Mul(e2)
	}
}
