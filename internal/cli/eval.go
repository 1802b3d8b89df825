package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/govalues/fixed/internal/calc"
	"github.com/spf13/cobra"
)

func newEvalCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions in prefix notation",
		Long: `Evaluate arithmetic expressions written in prefix (Polish) notation.
Each argument is one expression. With --file, expressions are read from the
file, one per line, and blank lines and lines starting with '#' are skipped.

Operators are +, -, *, / and %, operands are decimal numbers or the
constants pi and e. Expressions are evaluated concurrently and printed in
input order.

Examples:
    fixedcalc eval "* 10 + 1.25 4.5"
    fixedcalc eval --layout 32.32 --format .10f "/ 1 3" "* 2 pi"
    fixedcalc eval --file expressions.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, opts, file, args)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read expressions from file, one per line")
	return cmd
}

func runEval(cmd *cobra.Command, opts *options, file string, args []string) error {
	cfg, layout, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	spec, err := cfg.Spec()
	if err != nil {
		return err
	}

	exprs := args
	if file != "" {
		exprs, err = readExpressions(file)
		if err != nil {
			return err
		}
	}
	if len(exprs) == 0 {
		return fmt.Errorf("no expressions")
	}

	start := time.Now()
	results, err := calc.EvalAll(cmd.Context(), layout, exprs, cfg.Workers)
	if err != nil {
		return err
	}
	logger(cmd, opts).Printf("evaluated %d expressions in %v", len(exprs), time.Since(start))

	var failed int
	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Expr, r.Err)
			continue
		}
		fmt.Fprintln(out, r.Value.FormatSpec(spec))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(results))
	}
	return nil
}

// readExpressions reads one expression per line, skipping blank lines
// and comments.
func readExpressions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open expressions file: %w", err)
	}
	defer f.Close()

	var exprs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expressions file: %w", err)
	}
	return exprs, nil
}
