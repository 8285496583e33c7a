// Package cli contains the command-line interface for yapl.
//
// # Usage
//
// The CLI provides four subcommands over the same logging and profiling
// flag groups:
//
//	yapl dump program.yapl
//	yapl interp program.yapl
//	yapl transform program.yapl < input.json
//	yapl repl
//
// # Subcommands
//
//   - dump: parse a document and pretty-print its canonical JSON form.
//   - interp: parse and evaluate a program, discarding the result.
//   - transform: evaluate a program to a Function and apply it to stdin.
//   - repl: start the interactive line-oriented REPL.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp layout
//   - --log-callsite: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o yapl .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/yapl/pprof)
package cli
