package calc

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of evaluating one expression of a batch.
type Result struct {
	Expr  string
	Value Value // nil if Err is set
	Err   error
}

// EvalAll evaluates the expressions concurrently in layout l and returns
// the results in input order.
// At most workers expressions are evaluated at once, if workers is not
// positive the number of CPUs is used.
// A failing expression does not stop the batch, its error is stored in its
// result. EvalAll returns an error only if ctx is canceled.
func EvalAll(ctx context.Context, l Layout, exprs []string, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(exprs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, expr := range exprs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			v, err := l.Eval(expr)
			results[i] = Result{Expr: expr, Value: v, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
