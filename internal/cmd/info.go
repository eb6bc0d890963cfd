package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dectrig/trig"
)

func newPiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pi [digits]",
		Short: "Print π to the given number of significant digits",
		Long: fmt.Sprintf(`Print the built-in π constant rounded to digits significant digits
(1..%d). Without an argument the --prec setting is used.`, trig.PiPrecision),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			prec := cfg.Precision
			if len(args) == 1 {
				if prec, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("digits %q: %w", args[0], trig.ErrInvalidPrecision)
				}
			}
			pi, err := trig.Pi(prec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pi.Text('g', prec))

			return nil
		},
	}
}

func newFuncsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List the supported functions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, fn := range trig.Funcs() {
				fmt.Fprintln(cmd.OutOrStdout(), fn)
			}
		},
	}
}
