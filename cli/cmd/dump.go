package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ardnew/yapl/document"
)

// Dump parses a document and pretty-prints its canonical JSON form. There
// is only one output shape, since YAPL's document model has only one
// canonical serialization.
type Dump struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin" name:"source"`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) error {
	f, err := openSource(d.Source)
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

	compact, err := document.Serialize(tree)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(compact), "", "  "); err != nil {
		return err
	}

	fmt.Println(pretty.String())

	return nil
}
