package field

import (
	"errors"
	"math/big"
	"sync"

	"github.com/tuneinsight/lattigo/v6/ring"
)

// ZModulePrime is a ZModule with a prime modulus, hence a field: every
// non-zero element has an inverse.
type ZModulePrime struct {
	*ZModule

	generator uint64
	factors   []uint64

	mu           sync.RWMutex
	twiddleCache map[int]*twiddleSet
}

var (
	ErrPrimeTooLarge = errors.New("supporting up to 63-bit primes")
	ErrNotPrime      = errors.New("modulus of a ZModulePrime must be prime")
	ErrNotPowerOfTwo = errors.New("n must be a power of 2")
	ErrNotDivisible  = errors.New("n must divide p-1")
	errNTooSmall     = errors.New("n must be >= 2")
)

const maxBitUsage = 63

// NewZModulePrime rejects composite moduli.
func NewZModulePrime(prime uint64) (*ZModulePrime, error) {
	if prime < 2 {
		return nil, ErrModulusTooSmall
	}

	if prime > (1 << maxBitUsage) {
		return nil, ErrPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	// Baillie-PSW is exact below 2^64, so one extra Miller-Rabin round is plenty.
	if !b.ProbablyPrime(1) {
		return nil, ErrNotPrime
	}

	zp := &ZModulePrime{
		ZModule:      &ZModule{modulus: prime},
		generator:    1,
		twiddleCache: make(map[int]*twiddleSet),
	}

	switch prime {
	case 2:
		// Z/2Z* is trivial, 1 generates it.
		return zp, nil
	case 3:
		// ring.PrimitiveRoot starts its search at 3, which is 0 here.
		zp.generator, zp.factors = 2, []uint64{2}
		return zp, nil
	}

	g, factors, err := ring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	zp.generator = g
	zp.factors = factors

	return zp, nil
}

// Generator returns a primitive root modulo p.
func (f *ZModulePrime) Generator() Elem {
	return f.Elem(f.generator)
}

// Factors returns the prime factors of p-1.
func (f *ZModulePrime) Factors() []uint64 {
	return f.factors
}

// Div returns a / b.
func (f *ZModulePrime) Div(a, b Elem) (Elem, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return Elem{}, err
	}

	return f.Mul(a, inv), nil
}

// RootOfUnity returns a primitive n-th root of unity. n must be a power of
// two dividing p-1.
func (f *ZModulePrime) RootOfUnity(n uint64) (Elem, error) {
	if n == 0 || n == 1 {
		return Elem{}, errNTooSmall
	}

	if !IsPowerOfTwo(n) {
		return Elem{}, ErrNotPowerOfTwo
	}

	p := f.modulus
	if (p-1)%n != 0 {
		return Elem{}, ErrNotDivisible
	}

	// g^x == 1 (mod p) iff p-1 divides x, so w = g^((p-1)/n) has order exactly n.
	return f.Elem(f.pow(f.generator, (p-1)/n)), nil
}

func IsPowerOfTwo(n uint64) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n != 0 && (n&(n-1)) == 0
}
