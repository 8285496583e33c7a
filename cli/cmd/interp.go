package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/yapl/builtin"
	"github.com/ardnew/yapl/document"
	"github.com/ardnew/yapl/eval"
	"github.com/ardnew/yapl/log"
)

// Interp parses and evaluates a program, discarding the result value. A
// root environment is built, the document is parsed and evaluated, and any
// error propagates to main.go's exit-1 path.
type Interp struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin" name:"source"`
}

// Run executes the interp command.
func (i *Interp) Run(ctx context.Context) error {
	f, err := openSource(i.Source)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	tree, err := document.Parse(data)
	if err != nil {
		return err
	}

	env, err := builtin.NewRoot(i.Source)
	if err != nil {
		return err
	}

	if _, err := eval.Eval(env, tree); err != nil {
		return err
	}

	log.DebugContext(ctx, "interp finished", slog.String("source", i.Source))

	return nil
}
