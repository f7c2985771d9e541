package field

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"lukechampine.com/uint128"
)

var ErrModulusTooSmall = errors.New("modulus must be >= 2")

// ZModule is the ring of integers modulo N.
type ZModule struct {
	modulus uint64
}

// Elem is a residue of a ZModule. The value is always in [0, N).
//
// The zero value Elem{} has no ring attached and acts as 0 in whatever ring
// the other operand belongs to.
type Elem struct {
	value uint64
	ring  *ZModule
}

func NewZModule(modulus uint64) (*ZModule, error) {
	if modulus < 2 {
		return nil, ErrModulusTooSmall
	}

	return &ZModule{modulus: modulus}, nil
}

func (z *ZModule) Modulus() uint64 {
	return z.modulus
}

// Elem reduces v into the ring.
func (z *ZModule) Elem(v uint64) Elem {
	return Elem{value: v % z.modulus, ring: z}
}

// ElemFromInt64 is FromInt64 under a name that reads better at call sites.
func (z *ZModule) ElemFromInt64(v int64) Elem {
	return z.FromInt64(v)
}

// Elems reduces every value of vals into the ring.
func (z *ZModule) Elems(vals ...uint64) []Elem {
	out := make([]Elem, len(vals))
	for i, v := range vals {
		out[i] = z.Elem(v)
	}

	return out
}

func (z *ZModule) String() string {
	return "Z/" + strconv.FormatUint(z.modulus, 10) + "Z"
}

// ---------- Ring[Elem] ----------

func (z *ZModule) Zero() Elem { return Elem{ring: z} }
func (z *ZModule) One() Elem  { return Elem{value: 1, ring: z} }

// FromInt64 maps v into the ring. Negative values wrap around.
func (z *ZModule) FromInt64(v int64) Elem {
	if v >= 0 {
		return z.Elem(uint64(v))
	}

	mag := uint64(-(v + 1)) + 1 // |v| without overflowing on math.MinInt64
	r := mag % z.modulus
	if r == 0 {
		return z.Zero()
	}

	return Elem{value: z.modulus - r, ring: z}
}

func (z *ZModule) Add(a, b Elem) Elem { return Elem{value: z.add(a.value, b.value), ring: z} }
func (z *ZModule) Sub(a, b Elem) Elem { return Elem{value: z.sub(a.value, b.value), ring: z} }
func (z *ZModule) Mul(a, b Elem) Elem { return Elem{value: z.mul(a.value, b.value), ring: z} }
func (z *ZModule) Neg(a Elem) Elem    { return Elem{value: z.neg(a.value), ring: z} }

// Inverse uses the extended Euclidean algorithm. Only residues coprime to N
// have an inverse.
func (z *ZModule) Inverse(a Elem) (Elem, error) {
	inv, err := z.inverse(a.value)
	if err != nil {
		return Elem{}, err
	}

	return Elem{value: inv, ring: z}, nil
}

func (z *ZModule) Equal(a, b Elem) bool { return a.value == b.value }
func (z *ZModule) IsZero(a Elem) bool   { return a.value == 0 }

// InverseBySearch looks for the inverse by trying every candidate in turn,
// giving up after limit candidates. It exists for small moduli and as a
// cross-check of Inverse.
func (z *ZModule) InverseBySearch(a Elem, limit uint64) (Elem, error) {
	if a.value == 0 {
		return Elem{}, fmt.Errorf("%w: 0 in %v", ErrDomain, z)
	}

	candidates := z.modulus - 1
	for c := uint64(1); c <= candidates; c++ {
		if c > limit {
			return Elem{}, fmt.Errorf("%w: inverse search stopped after %d candidates", ErrNotConverged, limit)
		}

		if z.mul(a.value, c) == 1 {
			return Elem{value: c, ring: z}, nil
		}
	}

	return Elem{}, fmt.Errorf("%w: %d in %v", ErrDomain, a.value, z)
}

// Cast re-reduces e into the ring z. This may change the value.
func (z *ZModule) Cast(e Elem) Elem {
	return z.Elem(e.value)
}

// ---------- residue arithmetic ----------

func (z *ZModule) add(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= z.modulus {
		s -= z.modulus // wraps back into range when the sum overflowed 64 bits.
	}

	return s
}

func (z *ZModule) sub(a, b uint64) uint64 {
	if a < b {
		return z.modulus - (b - a)
	}

	return a - b
}

func (z *ZModule) mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return uint128.From64(a).Mul64(b).Mod64(z.modulus)
}

func (z *ZModule) neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return z.modulus - a
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (z *ZModule) pow(base, exp uint64) uint64 {
	x := uint64(1) % z.modulus
	for exp > 0 {
		if exp%2 == 1 {
			x = z.mul(x, base)
		}

		base = z.mul(base, base)
		exp /= 2
	}

	return x
}

// invariant: t_i * a = r_i (mod N).
func (z *ZModule) inverse(a uint64) (uint64, error) {
	r0, r1 := z.modulus, a%z.modulus
	t0, t1 := uint64(0), uint64(1)

	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, z.sub(t0, z.mul(q%z.modulus, t1))
	}

	if r0 != 1 {
		return 0, fmt.Errorf("%w: %d in %v", ErrDomain, a, z)
	}

	return t0, nil
}

// ---------- Elem ----------

func (e Elem) Value() uint64 {
	return e.value
}

// Ring returns the ring e belongs to, or nil for the zero value Elem{}.
func (e Elem) Ring() *ZModule {
	return e.ring
}

func (e Elem) Modulus() uint64 {
	if e.ring == nil {
		return 0
	}

	return e.ring.modulus
}

// ringOf picks the ring shared by a and b. Residues of different moduli
// cannot be combined.
func ringOf(a, b Elem) *ZModule {
	if err := checkRings(a, b); err != nil {
		panic(err)
	}

	if a.ring != nil {
		return a.ring
	}

	if b.ring == nil {
		panic("arithmetic on elements without a ring")
	}

	return b.ring
}

func checkRings(a, b Elem) error {
	if a.ring != nil && b.ring != nil && a.ring.modulus != b.ring.modulus {
		return fmt.Errorf("%w: %v and %v", ErrRingMismatch, a.ring, b.ring)
	}

	return nil
}

func (e Elem) Add(b Elem) Elem { return ringOf(e, b).Add(e, b) }
func (e Elem) Sub(b Elem) Elem { return ringOf(e, b).Sub(e, b) }
func (e Elem) Mul(b Elem) Elem { return ringOf(e, b).Mul(e, b) }

func (e Elem) Neg() Elem {
	if e.ring == nil {
		return e
	}

	return e.ring.Neg(e)
}

// Inc returns e+1, wrapping to 0 at N. Without a ring, 0+1 is the ringless 1,
// which acts as 1 in the ring of the other operand.
func (e Elem) Inc() Elem {
	if e.ring == nil {
		return Elem{value: 1}
	}

	return e.ring.Add(e, e.ring.One())
}

// Dec returns e-1, wrapping to N-1 at 0. The zero value Elem{} has no N to
// wrap to and yields an error wrapping ErrDomain.
func (e Elem) Dec() (Elem, error) {
	if e.ring == nil {
		return Elem{}, fmt.Errorf("%w: 0-1 without a modulus", ErrDomain)
	}

	return e.ring.Sub(e, e.ring.One()), nil
}

// Pow returns e^exp; e^0 is 1.
func (e Elem) Pow(exp uint64) Elem {
	if e.ring == nil {
		if exp == 0 {
			return Elem{value: 1}
		}

		return e
	}

	return Elem{value: e.ring.pow(e.value, exp), ring: e.ring}
}

// Inverse returns the multiplicative inverse of e. Zero, and residues sharing
// a factor with N, yield an error wrapping ErrDomain.
func (e Elem) Inverse() (Elem, error) {
	if e.ring == nil {
		return Elem{}, fmt.Errorf("%w: 0", ErrDomain)
	}

	return e.ring.Inverse(e)
}

func (e Elem) Div(b Elem) (Elem, error) {
	if err := checkRings(e, b); err != nil {
		return Elem{}, err
	}

	inv, err := b.Inverse()
	if err != nil {
		return Elem{}, err
	}

	return e.Mul(inv), nil
}

// Cmp compares the residues: -1 if e < b, 0 if e == b, 1 if e > b.
func (e Elem) Cmp(b Elem) int {
	switch {
	case e.value < b.value:
		return -1
	case e.value > b.value:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both residues are equal and belong to rings of the same modulus.
func (e Elem) Equal(b Elem) bool {
	if e.ring != nil && b.ring != nil && e.ring.modulus != b.ring.modulus {
		return false
	}

	return e.value == b.value
}

func (e Elem) String() string {
	return strconv.FormatUint(e.value, 10)
}
