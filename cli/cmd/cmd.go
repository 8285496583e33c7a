// Package cmd implements YAPL's CLI subcommands: dump, interp, transform,
// and repl.
package cmd

import (
	"io"
	"os"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens path for reading, treating "-" as stdin. The caller must
// close the returned io.ReadCloser.
func openSource(path string) (io.ReadCloser, error) {
	if path == stdinSource || path == "" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}
