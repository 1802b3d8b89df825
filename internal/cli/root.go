// Package cli implements the fixedcalc commands.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/govalues/fixed/internal/calc"
	"github.com/govalues/fixed/internal/config"
	"github.com/spf13/cobra"
)

// Version is the fixedcalc version, set by the linker.
var Version = "0.1.0-dev"

// options are the global flags.
type options struct {
	configFile string
	verbose    bool
}

// NewRootCommand returns the fixedcalc command with all subcommands.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "fixedcalc",
		Short: "fixedcalc - binary fixed-point calculator",
		Long: `fixedcalc evaluates arithmetic expressions in binary fixed-point layouts
such as 16.16 or 32.32, converts numbers between layouts and prints the
numeric limits of a layout.

Settings are read from fixedcalc.yaml in the working directory, from
FIXEDCALC_LAYOUT, FIXEDCALC_FORMAT and FIXEDCALC_WORKERS environment
variables, and from flags, in increasing order of priority.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log configuration and timings to stderr")
	rootCmd.PersistentFlags().StringP("layout", "l", "16.16", "fixed-point layout, one of "+fmt.Sprint(calc.Names()))
	rootCmd.PersistentFlags().StringP("format", "f", "", "format specification, such as \".4f\" or \">12\"")
	rootCmd.PersistentFlags().IntP("workers", "w", 0, "expressions evaluated at once, 0 means the number of CPUs")

	rootCmd.AddCommand(
		newEvalCmd(opts),
		newConvertCmd(opts),
		newLimitsCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command.
// This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration of cmd and the selected layout.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, calc.Layout, error) {
	cfg, err := config.LoadConfig(opts.configFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	layout, err := calc.Lookup(cfg.Layout)
	if err != nil {
		return nil, nil, err
	}
	logger(cmd, opts).Printf("config %q, layout %s, format %q, workers %d",
		cfg.ConfigPath(), layout.Name(), cfg.Format, cfg.Workers)
	return cfg, layout, nil
}

// logger returns a logger that writes to the error stream of cmd if the
// verbose flag is set, or discards everything otherwise.
func logger(cmd *cobra.Command, opts *options) *log.Logger {
	w := io.Discard
	if opts.verbose {
		w = cmd.ErrOrStderr()
	}
	return log.New(w, "fixedcalc: ", log.Lmsgprefix)
}
