package cli

import (
	"fmt"

	"github.com/govalues/fixed/internal/calc"
	"github.com/spf13/cobra"
)

func newConvertCmd(opts *options) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert --from <layout> --to <layout> <value...>",
		Short: "Convert numbers between layouts",
		Long: `Parse numbers in one layout and convert them to another.
Dropped fraction bits are rounded half away from zero and integral bits
that do not fit the target layout wrap around.

Examples:
    fixedcalc convert --from 16.16 --to 24.8 1.001953125
    fixedcalc convert --from 32.32 --to 8.8 --format .8f 0.1 0.2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, from, to, args)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source layout (default is the configured layout)")
	cmd.Flags().StringVar(&to, "to", "", "target layout")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runConvert(cmd *cobra.Command, opts *options, from, to string, args []string) error {
	cfg, src, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if from != "" {
		if src, err = calc.Lookup(from); err != nil {
			return err
		}
	}
	dst, err := calc.Lookup(to)
	if err != nil {
		return err
	}
	spec, err := cfg.Spec()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		v, err := src.Parse(arg)
		if err != nil {
			return fmt.Errorf("failed to parse %q in layout %s: %w", arg, src.Name(), err)
		}
		fmt.Fprintln(out, dst.Convert(v).FormatSpec(spec))
	}
	return nil
}
