package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ardnew/yapl/builtin"
	"github.com/ardnew/yapl/document"
	"github.com/ardnew/yapl/eval"
)

// Transform evaluates Source, requires the result to be a Function, reads
// stdin as a document, applies the function to it, and prints the result
// as JSON.
//
// Stdin is reserved for the input document, so Source names a file; it only
// accepts "-" for symmetry with the other subcommands and has no stdin left
// to read the input document from in that case.
type Transform struct {
	Source string `arg:"" help:"Program file" name:"source"`
}

// Run executes the transform command.
func (t *Transform) Run(ctx context.Context) error {
	f, err := openSource(t.Source)
	if err != nil {
		return err
	}
	defer f.Close()

	progData, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	progTree, err := document.Parse(progData)
	if err != nil {
		return err
	}

	env, err := builtin.NewRoot(t.Source)
	if err != nil {
		return err
	}

	result, err := eval.Eval(env, progTree)
	if err != nil {
		return err
	}

	fn, err := result.AsFunction()
	if err != nil {
		return err
	}

	inputData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	inputTree, err := document.Parse(inputData)
	if err != nil {
		return err
	}

	out, err := eval.Call(env, fn, inputTree)
	if err != nil {
		return err
	}

	serialized, err := document.Serialize(out)
	if err != nil {
		return err
	}

	fmt.Println(serialized)

	return nil
}
