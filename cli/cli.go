package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/yapl/cli/cmd"
)

const (
	appDescription = "A small functional language whose concrete syntax is JSON/YAML."
)

// CLI is the top-level command-line interface for yapl.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Dump      cmd.Dump      `cmd:"" help:"Parse a document and pretty-print its canonical JSON form"`
	Interp    cmd.Interp    `cmd:"" help:"Parse and evaluate a program, discarding the result"`
	Transform cmd.Transform `cmd:"" help:"Evaluate a program to a function and apply it to stdin"`
	Repl      cmd.Repl      `cmd:"" help:"Start the interactive REPL"`
}

// Run executes the yapl CLI with the given context and arguments. The exit
// function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	vars := kong.Vars{
		cmd.CacheIdentifier: cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context { return ctx }),
		kong.BindSingletonProvider(func() cmd.CacheDir { return cmd.CacheDir(cacheDir()) }),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
