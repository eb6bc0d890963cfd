package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dectrig/trig"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <func> <x>...",
		Short: "Evaluate a trigonometric function",
		Long: `Evaluate one of cos, sin, sec, csc or atan at each argument.

Arguments are decimal strings; every significant digit given is kept.
Results are printed one per line as "func(x) = value".`,
		Example: `
# cos(0.5) to 25 digits
dectrig eval cos 0.5 -p 25

# several arguments at once
dectrig eval atan 0.1 0.2 0.3

# reject atan arguments outside the series domain
dectrig eval atan 3 --domain-check
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			fn, err := trig.ParseFunc(args[0])
			if err != nil {
				return err
			}
			opts := cfg.TrigOptions(logger)

			out := cmd.OutOrStdout()
			for _, arg := range args[1:] {
				x, err := trig.Parse(arg)
				if err != nil {
					return fmt.Errorf("argument %q: %w", arg, err)
				}
				v, err := trig.Evaluate(fn, x, cfg.Precision, opts...)
				if err != nil {
					return fmt.Errorf("%s(%s): %w", fn, arg, err)
				}
				fmt.Fprintf(out, "%s(%s) = %s\n", fn, arg, v.Text('g', cfg.Precision))
			}

			return nil
		},
	}
}
