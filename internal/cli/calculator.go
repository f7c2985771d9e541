package cli

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathanmweiss/go-polynomial"
	"github.com/jonathanmweiss/go-polynomial/field"
)

var (
	errRealsOnly   = errors.New("only available over the reals")
	errEmptyCoeffs = errors.New("no coefficients given")
	errPrimeOnly   = errors.New("roots of unity need a prime modulus")
)

// calculator runs the commands on textual input, hiding the coefficient type.
type calculator interface {
	eval(poly, x string) (string, error)
	add(a, b string) (string, error)
	sub(a, b string) (string, error)
	mul(a, b string) (string, error)
	div(a, b string) (q, r string, err error)
	gcd(a, b string) (string, error)
	derive(a string) (string, error)
	integrate(a, c string) (string, error)
	interpolate(xs, ys string) (string, error)
	cyclotomic(n int) (string, error)
	reduce(a string) (string, error)
	roots(a string, opts ...polynomial.Option) ([]complex128, error)
	table(a string, n int, rootsOfUnity bool) (xs, ys []string, err error)
}

type calc[E any] struct {
	ring   field.Ring[E]
	parse  func(string) (E, error)
	format field.FormatOptions

	// optional
	mulFn func(a, b *field.Polynomial[E]) (*field.Polynomial[E], error)
	lift  func(*field.Polynomial[E]) *field.Polynomial[complex128]
	ntt   field.EvaluationMap[E]
}

// newCalculator picks the coefficient ring from the --modulus flag.
func newCalculator(cmd *cobra.Command) (calculator, error) {
	modulus, err := cmd.Flags().GetUint64("modulus")
	if err != nil {
		return nil, err
	}

	superscript, err := cmd.Flags().GetBool("superscript")
	if err != nil {
		return nil, err
	}

	opts := field.FormatOptions{Superscript: superscript}

	if modulus == 0 {
		log.Debug("working over the reals")

		return &calc[float64]{
			ring:   field.Reals,
			parse:  parseReal,
			format: opts,
			lift:   field.ToComplex,
		}, nil
	}

	if new(big.Int).SetUint64(modulus).ProbablyPrime(1) {
		zp, err := field.NewZModulePrime(modulus)
		if err != nil {
			return nil, err
		}

		log.WithField("modulus", modulus).Debug("working over a prime field")

		return &calc[field.Elem]{
			ring:   zp,
			parse:  residueParser(zp.ZModule),
			format: opts,
			mulFn:  zp.NTTMul,
			ntt:    field.NewNttEvaluator(zp),
		}, nil
	}

	z, err := field.NewZModule(modulus)
	if err != nil {
		return nil, err
	}

	log.WithField("modulus", modulus).Debug("working over a composite modulus")

	return &calc[field.Elem]{ring: z, parse: residueParser(z), format: opts}, nil
}

func parseReal(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func residueParser(z *field.ZModule) func(string) (field.Elem, error) {
	return func(s string) (field.Elem, error) {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return field.Elem{}, err
		}

		return z.FromInt64(v), nil
	}
}

// parseList parses "a,b,c" into coefficients.
func (c *calc[E]) parseList(s string) ([]E, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errEmptyCoeffs
	}

	parts := strings.Split(s, ",")
	out := make([]E, len(parts))

	for i, p := range parts {
		v, err := c.parse(p)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d (%q): %w", i, p, err)
		}

		out[i] = v
	}

	return out, nil
}

func (c *calc[E]) poly(s string) (*field.Polynomial[E], error) {
	coeffs, err := c.parseList(s)
	if err != nil {
		return nil, err
	}

	return field.NewPolynomial(c.ring, coeffs)
}

func (c *calc[E]) pair(a, b string) (*field.Polynomial[E], *field.Polynomial[E], error) {
	p, err := c.poly(a)
	if err != nil {
		return nil, nil, err
	}

	q, err := c.poly(b)
	if err != nil {
		return nil, nil, err
	}

	return p, q, nil
}

func (c *calc[E]) str(p *field.Polynomial[E]) string {
	return field.Format(p, c.format)
}

func (c *calc[E]) eval(poly, x string) (string, error) {
	p, err := c.poly(poly)
	if err != nil {
		return "", err
	}

	v, err := c.parse(x)
	if err != nil {
		return "", err
	}

	return fmt.Sprint(p.Eval(v)), nil
}

func (c *calc[E]) add(a, b string) (string, error) {
	p, q, err := c.pair(a, b)
	if err != nil {
		return "", err
	}

	return c.str(p.Add(q)), nil
}

func (c *calc[E]) sub(a, b string) (string, error) {
	p, q, err := c.pair(a, b)
	if err != nil {
		return "", err
	}

	return c.str(p.Sub(q)), nil
}

func (c *calc[E]) mul(a, b string) (string, error) {
	p, q, err := c.pair(a, b)
	if err != nil {
		return "", err
	}

	if c.mulFn == nil {
		return c.str(p.Mul(q)), nil
	}

	prod, err := c.mulFn(p, q)
	if err != nil {
		return "", err
	}

	return c.str(prod), nil
}

func (c *calc[E]) div(a, b string) (string, string, error) {
	p, q, err := c.pair(a, b)
	if err != nil {
		return "", "", err
	}

	quo, rem, err := p.LongDiv(q)
	if err != nil {
		return "", "", err
	}

	return c.str(quo), c.str(rem), nil
}

func (c *calc[E]) gcd(a, b string) (string, error) {
	p, q, err := c.pair(a, b)
	if err != nil {
		return "", err
	}

	g, err := field.GCD(p, q)
	if err != nil {
		return "", err
	}

	if g, err = g.Monic(); err != nil {
		return "", err
	}

	return c.str(g), nil
}

func (c *calc[E]) derive(a string) (string, error) {
	p, err := c.poly(a)
	if err != nil {
		return "", err
	}

	return c.str(p.Derivative()), nil
}

func (c *calc[E]) integrate(a, constant string) (string, error) {
	p, err := c.poly(a)
	if err != nil {
		return "", err
	}

	k, err := c.parse(constant)
	if err != nil {
		return "", err
	}

	f, err := p.Integral(k)
	if err != nil {
		return "", err
	}

	return c.str(f), nil
}

func (c *calc[E]) interpolate(xs, ys string) (string, error) {
	x, err := c.parseList(xs)
	if err != nil {
		return "", err
	}

	y, err := c.parseList(ys)
	if err != nil {
		return "", err
	}

	p, err := field.NewInterpolator(c.ring).Interpolate(x, y)
	if err != nil {
		return "", err
	}

	return c.str(p), nil
}

func (c *calc[E]) cyclotomic(n int) (string, error) {
	p, err := polynomial.Cyclotomic(c.ring, n)
	if err != nil {
		return "", err
	}

	return c.str(p), nil
}

func (c *calc[E]) reduce(a string) (string, error) {
	p, err := c.poly(a)
	if err != nil {
		return "", err
	}

	r, err := polynomial.Reduced(p)
	if err != nil {
		return "", err
	}

	return c.str(r), nil
}

func (c *calc[E]) roots(a string, opts ...polynomial.Option) ([]complex128, error) {
	if c.lift == nil {
		return nil, fmt.Errorf("roots: %w", errRealsOnly)
	}

	p, err := c.poly(a)
	if err != nil {
		return nil, err
	}

	return polynomial.Roots(c.lift(p), opts...)
}

// table evaluates a at the first n points 1, 2, ..., n, or at the n-th roots
// of unity when rootsOfUnity is set.
func (c *calc[E]) table(a string, n int, rootsOfUnity bool) ([]string, []string, error) {
	p, err := c.poly(a)
	if err != nil {
		return nil, nil, err
	}

	var ev field.EvaluationMap[E] = field.NewSlowEvaluator(c.ring)
	if rootsOfUnity {
		if c.ntt == nil {
			return nil, nil, errPrimeOnly
		}

		ev = c.ntt
	}

	points, err := ev.EvaluationPoints(n)
	if err != nil {
		return nil, nil, err
	}

	vals, err := ev.EvaluatePolynomial(p, n)
	if err != nil {
		return nil, nil, err
	}

	xs := make([]string, len(points))
	ys := make([]string, len(vals))

	for i := range points {
		xs[i] = fmt.Sprint(points[i])
		ys[i] = fmt.Sprint(vals[i])
	}

	return xs, ys, nil
}
