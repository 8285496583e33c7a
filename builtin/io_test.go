package builtin

import (
	"bytes"
	"testing"

	"github.com/ardnew/yapl/document"
	"github.com/ardnew/yapl/eval"
	"github.com/ardnew/yapl/value"
)

func TestPrintAndPrintlnWriteToGivenWriter(t *testing.T) {
	env := value.NewEnvironment()
	bindArithmetic(env)
	bindSpecialForms(env)

	var buf bytes.Buffer
	bindIOTo(env, &buf)

	tree, err := document.Parse([]byte(`{"println": "hello"}`))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if _, err := eval.Eval(env, tree); err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}

	if buf.String() != "hello\n" {
		t.Errorf("println wrote %q, want %q", buf.String(), "hello\n")
	}
}

func TestPrintWithoutTrailingNewline(t *testing.T) {
	env := value.NewEnvironment()
	bindArithmetic(env)
	bindSpecialForms(env)

	var buf bytes.Buffer
	bindIOTo(env, &buf)

	tree, err := document.Parse([]byte(`{"print": "no newline"}`))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if _, err := eval.Eval(env, tree); err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}

	if buf.String() != "no newline" {
		t.Errorf("print wrote %q, want %q", buf.String(), "no newline")
	}
}
