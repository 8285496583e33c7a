package cmd

import (
	"context"

	"github.com/ardnew/yapl/builtin"
	"github.com/ardnew/yapl/cli/cmd/repl"
)

// CacheDir is the resolved runtime cache directory, bound as a kong
// singleton so subcommands can depend on it by type.
type CacheDir string

// Repl starts YAPL's interactive line-oriented REPL against a fresh root
// environment.
type Repl struct{}

// Run executes the repl command.
func (Repl) Run(ctx context.Context, cacheDir CacheDir) error {
	env, err := builtin.NewRoot(".")
	if err != nil {
		return err
	}

	return repl.Run(ctx, env, string(cacheDir))
}
