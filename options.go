package polynomial

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 1000
	DefaultPhaseOffset   = 0.4
)

var ErrInvalidOption = errors.New("invalid option")

type config struct {
	tolerance     float64
	maxIterations int
	phaseOffset   float64
	logger        log.FieldLogger
}

// Option configures the root finder.
type Option func(*config) error

// WithTolerance sets the absolute distance under which an estimate is
// considered settled.
func WithTolerance(tol float64) Option {
	return func(c *config) error {
		if !(tol > 0) {
			return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidOption, tol)
		}
		c.tolerance = tol
		return nil
	}
}

// WithMaxIterations caps the number of Durand-Kerner sweeps.
func WithMaxIterations(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: max iterations must be >= 1, got %d", ErrInvalidOption, n)
		}
		c.maxIterations = n
		return nil
	}
}

// WithPhaseOffset rotates the initial estimates. A non-zero offset keeps them
// off the real axis, where real polynomials are symmetric.
func WithPhaseOffset(rad float64) Option {
	return func(c *config) error {
		c.phaseOffset = rad
		return nil
	}
}

func WithLogger(l log.FieldLogger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		c.logger = l
		return nil
	}
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		phaseOffset:   DefaultPhaseOffset,
		logger:        log.StandardLogger(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
