package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  "Display the configuration after merging defaults, the --config file and flags",
		Example: `
# Human-readable
dectrig config show

# As JSON or YAML
dectrig config show --json
dectrig -c dectrig.toml config show --yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			asYAML, _ := cmd.Flags().GetBool("yaml")

			cfg, err := loadSettings(cmd)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(cfg)
			}
			if asYAML {
				encoder := yaml.NewEncoder(out)
				encoder.SetIndent(2)
				if err := encoder.Encode(cfg); err != nil {
					return err
				}
				return encoder.Close()
			}

			fmt.Fprintln(out, "Effective Configuration")
			fmt.Fprintln(out, "=======================")
			fmt.Fprintf(out, "  Precision:     %d\n", cfg.Precision)
			fmt.Fprintf(out, "  Guard Digits:  %d\n", cfg.GuardDigits)
			fmt.Fprintf(out, "  Rounding:      %s\n", cfg.Rounding)
			fmt.Fprintf(out, "  Max Terms:     %d\n", cfg.MaxTerms)
			fmt.Fprintf(out, "  Domain Check:  %v\n", cfg.DomainCheck)
			fmt.Fprintf(out, "  Log Level:     %s\n", cfg.LogLevel)

			return nil
		},
	}
	showCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	showCmd.Flags().BoolP("yaml", "y", false, "Output as YAML")

	configCmd.AddCommand(showCmd)

	return configCmd
}
