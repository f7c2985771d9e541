package field

import (
	"errors"
	"sync"
)

// EvaluationMap evaluates polynomials on a fixed family of points. It can be
// fast, like the NTT, or plain Horner evaluation at every point.
type EvaluationMap[E any] interface {
	Ring() Ring[E]

	// EvaluationPoints returns the first n points of the family.
	EvaluationPoints(n int) ([]E, error)
	EvaluatePolynomial(p *Polynomial[E], n int) ([]E, error)

	// Interpolate returns the unique polynomial of degree < len(ys) taking the
	// value ys[i] at the i-th evaluation point.
	Interpolate(ys []E) (*Polynomial[E], error)

	// The locator polynomial for the evaluation points.
	// Namely, given the evaluation points x_1, ..., x_n, the locator polynomial is
	// L(x) = (x - x_1)(x - x_2)...(x - x_n)
	LocatorPolynomial(n int) (*Polynomial[E], error)
}

var (
	_ EvaluationMap[float64] = (*SlowEvaluator[float64])(nil)
	_ EvaluationMap[Elem]    = (*NttEvaluator)(nil)
)

var errNonPositivePoints = errors.New("number of evaluation points must be positive")

type evaluationCache[E any] struct {
	sync.Locker
	sizeToPoints map[int][]E
}

func newEvaluationCache[E any]() *evaluationCache[E] {
	return &evaluationCache[E]{
		Locker:       &sync.Mutex{},
		sizeToPoints: make(map[int][]E),
	}
}

func (c *evaluationCache[E]) loadPoints(n int) []E {
	c.Lock()
	defer c.Unlock()

	return c.sizeToPoints[n]
}

func (c *evaluationCache[E]) storePoints(n int, points []E) []E {
	c.Lock()
	defer c.Unlock()

	if existing, ok := c.sizeToPoints[n]; ok {
		return existing
	}

	c.sizeToPoints[n] = points

	return points
}

// SlowEvaluator evaluates at 1, 2, ..., n with Horner's rule. Over Z/pZ the
// points stop being distinct once n >= p, and Interpolate reports
// ErrNonUniqueXs.
type SlowEvaluator[E any] struct {
	r     Ring[E]
	cache *evaluationCache[E]
}

func NewSlowEvaluator[E any](r Ring[E]) *SlowEvaluator[E] {
	return &SlowEvaluator[E]{
		r:     r,
		cache: newEvaluationCache[E](),
	}
}

func (e *SlowEvaluator[E]) Ring() Ring[E] {
	return e.r
}

func (e *SlowEvaluator[E]) EvaluationPoints(n int) ([]E, error) {
	if n <= 0 {
		return nil, errNonPositivePoints
	}

	if points := e.cache.loadPoints(n); points != nil {
		return points, nil
	}

	points := make([]E, n)
	for i := range points {
		points[i] = e.r.FromInt64(int64(i + 1))
	}

	return e.cache.storePoints(n, points), nil
}

func (e *SlowEvaluator[E]) EvaluatePolynomial(p *Polynomial[E], n int) ([]E, error) {
	points, err := e.EvaluationPoints(n)
	if err != nil {
		return nil, err
	}

	values := make([]E, len(points))
	for i, x := range points {
		values[i] = p.Eval(x)
	}

	return values, nil
}

func (e *SlowEvaluator[E]) Interpolate(ys []E) (*Polynomial[E], error) {
	if len(ys) == 0 {
		return nil, ErrEmptyCoefficients
	}

	xs, err := e.EvaluationPoints(len(ys))
	if err != nil {
		return nil, err
	}

	return NewInterpolator(e.r).Interpolate(xs, ys)
}

func (e *SlowEvaluator[E]) LocatorPolynomial(n int) (*Polynomial[E], error) {
	xs, err := e.EvaluationPoints(n)
	if err != nil {
		return nil, err
	}

	return FromRoots(e.r, xs), nil
}

// NttEvaluator evaluates at the powers w^0, ..., w^(n-1) of a primitive n-th
// root of unity w. n must be a power of two dividing p-1.
type NttEvaluator struct {
	f     *ZModulePrime
	cache *evaluationCache[Elem]
}

func NewNttEvaluator(f *ZModulePrime) *NttEvaluator {
	return &NttEvaluator{
		f:     f,
		cache: newEvaluationCache[Elem](),
	}
}

func (e *NttEvaluator) Ring() Ring[Elem] {
	return e.f
}

func (e *NttEvaluator) EvaluationPoints(n int) ([]Elem, error) {
	if n <= 0 {
		return nil, errNonPositivePoints
	}

	if points := e.cache.loadPoints(n); points != nil {
		return points, nil
	}

	// the transform of p(x) = x is exactly the list of points.
	x := make([]uint64, n)
	if n > 1 {
		x[1] = 1
	} else {
		x[0] = 1
	}

	if err := e.transform(x); err != nil {
		return nil, err
	}

	return e.cache.storePoints(n, e.toElems(x)), nil
}

// EvaluatePolynomial folds p modulo x^n - 1 before the transform, so p may
// have any degree.
func (e *NttEvaluator) EvaluatePolynomial(p *Polynomial[Elem], n int) ([]Elem, error) {
	if n <= 0 {
		return nil, errNonPositivePoints
	}

	xs := make([]uint64, n)
	for i, c := range p.coeffs {
		xs[i%n] = e.f.add(xs[i%n], c.value%e.f.modulus)
	}

	if err := e.transform(xs); err != nil {
		return nil, err
	}

	return e.toElems(xs), nil
}

func (e *NttEvaluator) Interpolate(ys []Elem) (*Polynomial[Elem], error) {
	if len(ys) == 0 {
		return nil, ErrEmptyCoefficients
	}

	xs := make([]uint64, len(ys))
	for i, y := range ys {
		xs[i] = y.value % e.f.modulus
	}

	if len(xs) > 1 {
		if err := e.checkSize(len(xs)); err != nil {
			return nil, err
		}

		if err := e.f.nttBackward(xs); err != nil {
			return nil, err
		}
	}

	return fromInner[Elem](e.f, e.toElems(xs)), nil
}

// LocatorPolynomial returns x^n - 1, which vanishes on every n-th root of unity.
func (e *NttEvaluator) LocatorPolynomial(n int) (*Polynomial[Elem], error) {
	if n <= 0 {
		return nil, errNonPositivePoints
	}

	if n > 1 {
		if err := e.checkSize(n); err != nil {
			return nil, err
		}
	}

	inner := make([]Elem, n+1)
	for i := range inner {
		inner[i] = e.f.Zero()
	}

	inner[0] = e.f.Neg(e.f.One())
	inner[n] = e.f.One()

	return fromInner[Elem](e.f, inner), nil
}

// a single point is w^0 = 1, and the transform is the identity.
func (e *NttEvaluator) transform(xs []uint64) error {
	if len(xs) == 1 {
		return nil
	}

	if err := e.checkSize(len(xs)); err != nil {
		return err
	}

	return e.f.nttForward(xs)
}

func (e *NttEvaluator) checkSize(n int) error {
	_, err := e.f.RootOfUnity(uint64(n))
	return err
}

func (e *NttEvaluator) toElems(xs []uint64) []Elem {
	out := make([]Elem, len(xs))
	for i, x := range xs {
		out[i] = Elem{value: x, ring: e.f.ZModule}
	}

	return out
}
