package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
)

// Eval evaluates an expression with the keys of a document bound as
// variables.
type Eval struct {
	Source string `arg:"" help:"Source input file or '-' for stdin" name:"source"`
	Expr   string `arg:"" help:"Expression to evaluate"              name:"expr"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	doc, err := load(ctx, e.Source)
	if err != nil {
		return err
	}

	result, err := evaluate(e.Expr, doc.ToMap())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(outputFrom(ctx), result)

	return err
}

// evaluate compiles src against env and runs it.
//
// Keys that are not valid identifiers are reachable as $env["key"].
func evaluate(src string, env map[string]any) (any, error) {
	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).
			With(slog.String("expr", src))
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).
			With(slog.String("expr", src))
	}

	return result, nil
}
