package field

import (
	"errors"
	"fmt"
	"math/bits"
)

var errNTTSize = errors.New("ntt: length must be a power of two")

type twiddleSet struct {
	// For each stage s (m = 2<<s), fwd[s] (and inv[s]) has length m/2
	// holding w^j where w = psi^(n/m) for forward, and w = psiInv^(n/m) for inverse.
	fwd  [][]uint64
	inv  [][]uint64
	nInv uint64
}

func (f *ZModulePrime) getTwiddles(n int) (*twiddleSet, error) {
	f.mu.RLock()
	if ts, ok := f.twiddleCache[n]; ok {
		f.mu.RUnlock()
		return ts, nil
	}
	f.mu.RUnlock()

	psi, err := f.RootOfUnity(uint64(n))
	if err != nil {
		return nil, err
	}

	psiInv, err := f.inverse(psi.value)
	if err != nil {
		return nil, err
	}

	nInv, err := f.inverse(uint64(n) % f.modulus)
	if err != nil {
		return nil, err
	}

	var fwd, inv [][]uint64

	for m := 2; m <= n; m <<= 1 {
		half := m >> 1
		wmF := f.pow(psi.value, uint64(n/m))
		wmI := f.pow(psiInv, uint64(n/m))

		rowF := make([]uint64, half)
		rowI := make([]uint64, half)

		wF, wI := uint64(1), uint64(1)
		for j := range half {
			rowF[j] = wF
			rowI[j] = wI
			wF = f.mul(wF, wmF)
			wI = f.mul(wI, wmI)
		}

		fwd = append(fwd, rowF)
		inv = append(inv, rowI)
	}

	ts := &twiddleSet{fwd: fwd, inv: inv, nInv: nInv}

	f.mu.Lock()
	defer f.mu.Unlock()

	// keep the first table built if another goroutine raced us.
	if existing, ok := f.twiddleCache[n]; ok {
		return existing, nil
	}

	f.twiddleCache[n] = ts

	return ts, nil
}

// nttForward transforms xs in place. len(xs) must be a power of two >= 2.
func (f *ZModulePrime) nttForward(xs []uint64) error {
	return f.butterflies(xs, false)
}

// nttBackward inverts nttForward, including the 1/n scaling.
func (f *ZModulePrime) nttBackward(xs []uint64) error {
	if err := f.butterflies(xs, true); err != nil {
		return err
	}

	ts, err := f.getTwiddles(len(xs))
	if err != nil {
		return err
	}

	for i := range xs {
		xs[i] = f.mul(xs[i], ts.nInv)
	}

	return nil
}

// iterative Cooley-Tukey over bit-reversed input.
func (f *ZModulePrime) butterflies(xs []uint64, inverse bool) error {
	n := len(xs)
	if n < 2 || !IsPowerOfTwo(uint64(n)) {
		return errNTTSize
	}

	ts, err := f.getTwiddles(n)
	if err != nil {
		return err
	}

	bitReverseInPlace(xs)

	for s, m := 0, 2; m <= n; s, m = s+1, m<<1 {
		half := m >> 1

		ws := ts.fwd[s]
		if inverse {
			ws = ts.inv[s]
		}

		for k := 0; k < n; k += m {
			for j := range half {
				u := xs[k+j]
				t := f.mul(ws[j], xs[k+j+half])
				xs[k+j] = f.add(u, t)
				xs[k+j+half] = f.sub(u, t)
			}
		}
	}

	return nil
}

func bitReverseInPlace(xs []uint64) {
	n := len(xs)
	if n <= 1 {
		return
	}

	shift := 64 - bits.Len(uint(n-1))
	for i := range n {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if i < j {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
}

// NTTMul multiplies a and b with the number theoretic transform. When p-1 has
// no power-of-two factor large enough for the product, it falls back to the
// schoolbook product. Both operands must belong to this field.
func (f *ZModulePrime) NTTMul(a, b *Polynomial[Elem]) (*Polynomial[Elem], error) {
	for _, p := range []*Polynomial[Elem]{a, b} {
		if !sameRing(p.r, Ring[Elem](f)) {
			return nil, fmt.Errorf("%w: %v and %v", ErrRingMismatch, p.r, f)
		}
	}

	if a.IsZero() || b.IsZero() {
		return Zero[Elem](f), nil
	}

	size := len(a.coeffs) + len(b.coeffs) - 1

	n := 2
	for n < size {
		n <<= 1
	}

	if (f.modulus-1)%uint64(n) != 0 {
		return a.Mul(b), nil
	}

	fa := make([]uint64, n)
	fb := make([]uint64, n)

	for i, c := range a.coeffs {
		fa[i] = c.value % f.modulus
	}

	for i, c := range b.coeffs {
		fb[i] = c.value % f.modulus
	}

	if err := f.nttForward(fa); err != nil {
		return nil, err
	}

	if err := f.nttForward(fb); err != nil {
		return nil, err
	}

	for i := range fa {
		fa[i] = f.mul(fa[i], fb[i])
	}

	if err := f.nttBackward(fa); err != nil {
		return nil, err
	}

	out := make([]Elem, size)
	for i := range out {
		out[i] = Elem{value: fa[i], ring: f.ZModule}
	}

	return fromInner[Elem](f, out), nil
}
