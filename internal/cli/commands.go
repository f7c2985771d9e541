package cli

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval coeffs x",
		Short: "evaluate a polynomial at a point.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCalculator(cmd)
			if err != nil {
				return err
			}

			v, err := c.eval(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}
}

func newRootsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roots coeffs",
		Short: "find the complex roots of a real polynomial.",
		Long: `Find the complex roots of a real polynomial. Degree 1 and 2 are solved
in closed form, higher degrees with the Durand-Kerner iteration. Repeated
roots converge slowly; run the polynomial through reduce first when they are
expected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := solverOptions(cmd)
			if err != nil {
				return err
			}

			c, err := newCalculator(cmd)
			if err != nil {
				return err
			}

			roots, err := c.roots(args[0], opts...)
			if err != nil {
				return err
			}

			log.WithField("count", len(roots)).Debug("roots found")

			for _, r := range roots {
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatComplex(r, 'g', 8, 128))
			}

			return nil
		},
	}

	cmd.Flags().String("config", "", "YAML file with solver settings")
	cmd.Flags().Float64("tolerance", 0, "absolute convergence tolerance")
	cmd.Flags().Int("max-iterations", 0, "iteration cap")

	return cmd
}

// binary builds a command taking two polynomials and printing one result.
func binary(use, short string, op func(c calculator, a, b string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " a b",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCalculator(cmd)
			if err != nil {
				return err
			}

			out, err := op(c, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return binary("add", "add two polynomials.", calculator.add)
}

func newSubCmd() *cobra.Command {
	return binary("sub", "subtract b from a.", calculator.sub)
}

func newMulCmd() *cobra.Command {
	return binary("mul", "multiply two polynomials.", calculator.mul)
}

func newGCDCmd() *cobra.Command {
	return binary("gcd", "monic greatest common divisor.", calculator.gcd)
}

func newInterpolateCmd() *cobra.Command {
	cmd := binary("interpolate", "Lagrange interpolation through (xs, ys).", calculator.interpolate)
	cmd.Use = "interpolate xs ys"

	return cmd
}

func newDivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div a b",
		Short: "euclidean division of a by b.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCalculator(cmd)
			if err != nil {
				return err
			}

			q, r, err := c.div(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "q = %s\nr = %s\n", q, r)

			return nil
		},
	}
}

func newDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive coeffs",
		Short: "differentiate a polynomial.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCalculator(cmd)
			if err != nil {
				return err
			}

			out, err := c.derive(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}

func newIntegrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate coeffs",
		Short: "antiderivative of a polynomial.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCalculator(cmd)
			if err != nil {
				return err
			}

			constant, _ := cmd.Flags().GetString("constant")

			out, err := c.integrate(args[0], constant)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringP("constant", "c", "0", "integration constant")

	return cmd
}

func newCyclotomicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cyclotomic n",
		Short: "print the n-th cyclotomic polynomial.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			c, err := newCalculator(cmd)
			if err != nil {
				return err
			}

			out, err := c.cyclotomic(n)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table coeffs n",
		Short: "evaluate a polynomial at n points.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			unity, err := cmd.Flags().GetBool("roots-of-unity")
			if err != nil {
				return err
			}

			c, err := newCalculator(cmd)
			if err != nil {
				return err
			}

			xs, ys, err := c.table(args[0], n, unity)
			if err != nil {
				return err
			}

			for i := range xs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", xs[i], ys[i])
			}

			return nil
		},
	}

	cmd.Flags().Bool("roots-of-unity", false, "evaluate at the n-th roots of unity (prime modulus only)")

	return cmd
}

func newReduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce coeffs",
		Short: "monic square-free part, with every root of multiplicity one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCalculator(cmd)
			if err != nil {
				return err
			}

			out, err := c.reduce(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}
