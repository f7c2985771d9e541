package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonathanmweiss/go-polynomial"
)

// SolverConfig is the optional YAML file read by the roots command:
//
//	tolerance: 1e-9
//	max_iterations: 500
//	phase_offset: 0.4
type SolverConfig struct {
	Tolerance     float64  `yaml:"tolerance"`
	MaxIterations int      `yaml:"max_iterations"`
	PhaseOffset   *float64 `yaml:"phase_offset"`
}

// LoadSolverConfig reads a SolverConfig. Unknown keys are rejected.
func LoadSolverConfig(path string) (*SolverConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	var cfg SolverConfig

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// Options turns the set fields into root finder options.
func (c *SolverConfig) Options() []polynomial.Option {
	var opts []polynomial.Option

	if c.Tolerance != 0 {
		opts = append(opts, polynomial.WithTolerance(c.Tolerance))
	}

	if c.MaxIterations != 0 {
		opts = append(opts, polynomial.WithMaxIterations(c.MaxIterations))
	}

	if c.PhaseOffset != nil {
		opts = append(opts, polynomial.WithPhaseOffset(*c.PhaseOffset))
	}

	return opts
}

// solverOptions merges the config file with the command line; flags win.
func solverOptions(cmd *cobra.Command) ([]polynomial.Option, error) {
	var opts []polynomial.Option

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := LoadSolverConfig(path)
		if err != nil {
			return nil, err
		}

		opts = append(opts, cfg.Options()...)
	}

	if cmd.Flags().Changed("tolerance") {
		tol, err := cmd.Flags().GetFloat64("tolerance")
		if err != nil {
			return nil, err
		}

		opts = append(opts, polynomial.WithTolerance(tol))
	}

	if cmd.Flags().Changed("max-iterations") {
		n, err := cmd.Flags().GetInt("max-iterations")
		if err != nil {
			return nil, err
		}

		opts = append(opts, polynomial.WithMaxIterations(n))
	}

	return opts, nil
}
