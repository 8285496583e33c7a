package document

import (
	"testing"

	"github.com/ardnew/yapl/value"
)

func TestParseScalars(t *testing.T) {
	cases := []struct {
		src  string
		kind value.Kind
	}{
		{"null", value.KindNull},
		{"true", value.KindBool},
		{"42", value.KindNumber},
		{"3.14", value.KindNumber},
		{`"hello"`, value.KindString},
	}

	for _, c := range cases {
		v, err := Parse([]byte(c.src))
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.src, err)
		}

		if v.Kind() != c.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", c.src, v.Kind(), c.kind)
		}
	}
}

func TestParseIntVsFloat(t *testing.T) {
	i, err := Parse([]byte("42"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, _ := i.AsNumber()
	if !n.IsInt() {
		t.Error("42 should parse as an integer Number")
	}

	f, err := Parse([]byte("42.0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nf, _ := f.AsNumber()
	if nf.IsInt() {
		t.Error("42.0 should parse as a float Number")
	}
}

func TestParseArray(t *testing.T) {
	v, err := Parse([]byte(`[1, 2, 3]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	elems, err := v.AsArray()
	if err != nil {
		t.Fatalf("expected array: %v", err)
	}

	if len(elems) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elems))
	}
}

func TestParseObjectPreservesInsertionOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o, err := v.AsObject()
	if err != nil {
		t.Fatalf("expected object: %v", err)
	}

	want := []string{"z", "a", "m"}

	got := o.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseObjectKeyMustBeString(t *testing.T) {
	if _, err := Parse([]byte(`{42: "x"}`)); err == nil {
		t.Error("expected parse error for a non-string object key")
	}
}

func TestParseEmptyDocumentYieldsNull(t *testing.T) {
	v, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !v.IsNull() {
		t.Error("an empty document should parse to Null")
	}
}

func TestParseMalformedInput(t *testing.T) {
	if _, err := Parse([]byte("\tfoo: bar")); err == nil {
		t.Error("expected a parse error for tab-indented YAML")
	}
}
