package cli

import (
	"fmt"

	"github.com/govalues/fixed/internal/calc"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newLimitsCmd(opts *options) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Print the numeric limits of a layout as YAML",
		Long: `Print the extreme values, constants and numeric properties of a layout
as a YAML document. With --all, one document is printed per layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, layout, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			layouts := []calc.Layout{layout}
			if all {
				layouts = layouts[:0]
				for _, name := range calc.Names() {
					l, err := calc.Lookup(name)
					if err != nil {
						return err
					}
					layouts = append(layouts, l)
				}
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			for _, l := range layouts {
				if err := enc.Encode(l.Report()); err != nil {
					return fmt.Errorf("failed to encode limits: %w", err)
				}
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print all layouts")
	return cmd
}
