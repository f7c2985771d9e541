// Package cli implements the polycalc command line tool.
package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "polycalc",
		Short: "Polynomial calculator over the reals or Z/NZ.",
		Long: `Polynomial calculator over the reals or Z/NZ.

Polynomials are given as comma separated coefficients, lowest degree first:
"2,2,1" is x^2+2x+2.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().Uint64P("modulus", "m", 0, "work over Z/NZ instead of the reals")
	root.PersistentFlags().Bool("superscript", false, "print powers as superscripts")

	root.AddCommand(
		newEvalCmd(),
		newRootsCmd(),
		newAddCmd(),
		newSubCmd(),
		newMulCmd(),
		newDivCmd(),
		newGCDCmd(),
		newDeriveCmd(),
		newIntegrateCmd(),
		newInterpolateCmd(),
		newCyclotomicCmd(),
		newTableCmd(),
		newReduceCmd(),
	)

	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(2)
	}

	return r
}
