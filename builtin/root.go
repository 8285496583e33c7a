// Package builtin constructs YAPL's root environment: the fixed built-in
// table, wired to the value/eval/document packages.
package builtin

import (
	"path/filepath"

	"github.com/ardnew/yapl/eval"
	"github.com/ardnew/yapl/value"
)

// moduleCache is shared across every root environment constructed in this
// process: it survives across imports reached through different paths,
// while each import still evaluates its module in its own fresh root
// environment.
var moduleCache = eval.NewModuleCache()

// NewRoot builds a fresh root environment whose __file__ is set to the
// absolute path of the program source at sourcePath, with every built-in
// bound.
func NewRoot(sourcePath string) (*value.Environment, error) {
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, err
	}

	env := value.NewEnvironment()
	env.BindString("__file__", abs)

	bindArithmetic(env)
	bindSpecialForms(env)
	bindIO(env)

	return env, nil
}
