// Package cmd implements the dectrig command line.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dectrig/internal/config"
)

// NewRootCmd builds a fresh command tree. Each call returns independent flag
// state, so tests can execute it repeatedly.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dectrig",
		Short: "Arbitrary-precision decimal trigonometry",
		Long: `dectrig evaluates cos, sin, sec, csc and atan on decimal arguments
to a requested number of significant digits.

Settings come from built-in defaults, then an optional YAML/TOML file
(--config), then command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaults := config.Default()
	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "Path to a YAML or TOML settings file")
	pf.BoolP("debug", "d", false, "Enable debug logging")
	pf.IntP("prec", "p", defaults.Precision, "Significant digits of the result")
	pf.Int("guard", defaults.GuardDigits, "Extra working digits used during summation")
	pf.Int("max-terms", defaults.MaxTerms, "Series term cap (0 = unlimited)")
	pf.String("rounding", defaults.Rounding, "Rounding mode: half_even, half_away, down, up, floor, ceiling")
	pf.Bool("domain-check", defaults.DomainCheck, "Reject atan arguments with |x| >= 1")

	root.AddCommand(
		newEvalCmd(),
		newPiCmd(),
		newFuncsCmd(),
		newConfigCmd(),
	)

	return root
}

// loadSettings resolves the effective configuration for cmd: defaults, then
// the --config file, then any flag the user set explicitly.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("prec") {
		cfg.Precision, _ = flags.GetInt("prec")
	}
	if flags.Changed("guard") {
		cfg.GuardDigits, _ = flags.GetInt("guard")
	}
	if flags.Changed("max-terms") {
		cfg.MaxTerms, _ = flags.GetInt("max-terms")
	}
	if flags.Changed("rounding") {
		cfg.Rounding, _ = flags.GetString("rounding")
	}
	if flags.Changed("domain-check") {
		cfg.DomainCheck, _ = flags.GetBool("domain-check")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}

	return cfg, nil
}

// newLogger writes text records to the command's stderr at cfg's level.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}
