package builtin_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/yapl/builtin"
	"github.com/ardnew/yapl/document"
	"github.com/ardnew/yapl/eval"
)

func TestImportBindsWholeModuleUnderName(t *testing.T) {
	dir := t.TempDir()

	mathSrc := `{"export": {"double": {"lambda": "x", "+in": {"*": [{"$": "x"}, 2]}}}}`
	if err := os.WriteFile(filepath.Join(dir, "math.yapl"), []byte(mathSrc), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	mainSrc := `{
		"import": {"math": "m"},
		"+in": {"type-of": {"$": "m"}}
	}`

	tree, err := document.Parse([]byte(mainSrc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	env, err := builtin.NewRoot(filepath.Join(dir, "main.yapl"))
	if err != nil {
		t.Fatalf("NewRoot error: %v", err)
	}

	result, err := eval.Eval(env, tree)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}

	out, err := document.Serialize(result)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	if out != `"object"` {
		t.Errorf("type-of imported module = %q, want %q", out, `"object"`)
	}
}

func TestImportInjectsExportsWhenBindingIsNull(t *testing.T) {
	dir := t.TempDir()

	constsSrc := `{"export": {"pi": 3}}`
	if err := os.WriteFile(filepath.Join(dir, "consts.yapl"), []byte(constsSrc), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	mainSrc := `{
		"import": {"consts": null},
		"+in": {"$": "pi"}
	}`

	tree, err := document.Parse([]byte(mainSrc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	env, err := builtin.NewRoot(filepath.Join(dir, "main.yapl"))
	if err != nil {
		t.Fatalf("NewRoot error: %v", err)
	}

	result, err := eval.Eval(env, tree)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}

	out, err := document.Serialize(result)
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	if out != "3" {
		t.Errorf("imported pi = %q, want %q", out, "3")
	}
}
