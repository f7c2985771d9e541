package field

import (
	"fmt"
	"strconv"
	"strings"
)

type FormatOptions struct {
	// Superscript writes powers with Unicode superscript digits (x², not x^2).
	Superscript bool
}

var superscripts = [10]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// String renders p in descending powers, e.g. "x^2+2x+2".
func (p *Polynomial[E]) String() string {
	return Format(p, FormatOptions{})
}

// Format renders p in descending powers. Zero terms are skipped, and unit
// coefficients are written as a bare sign.
func Format[E any](p *Polynomial[E], opts FormatOptions) string {
	if p.Degree() == 0 {
		return fmt.Sprint(p.coeffs[0])
	}

	r := p.r
	one, minusOne := r.One(), r.Neg(r.One())

	var sb strings.Builder

	for i := p.Degree(); i >= 0; i-- {
		c := p.coeffs[i]
		if r.IsZero(c) {
			continue
		}

		term := fmt.Sprint(c)

		switch {
		case i == 0:
		case r.Equal(c, one):
			term = ""
		case strings.HasPrefix(term, "-") && r.Equal(c, minusOne):
			term = "-"
		}

		if i > 0 {
			term += string(p.variable) + power(i, opts)
		}

		if sb.Len() > 0 && !strings.HasPrefix(term, "-") {
			sb.WriteByte('+')
		}

		sb.WriteString(term)
	}

	return sb.String()
}

func power(n int, opts FormatOptions) string {
	if n == 1 {
		return ""
	}

	digits := strconv.Itoa(n)
	if !opts.Superscript {
		return "^" + digits
	}

	var sb strings.Builder
	for _, d := range digits {
		sb.WriteString(superscripts[d-'0'])
	}

	return sb.String()
}
