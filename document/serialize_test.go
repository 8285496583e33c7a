package document

import "testing"

func TestSerializeScalars(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"null", "null"},
		{"true", "true"},
		{"false", "false"},
		{"42", "42"},
		{`"hi"`, `"hi"`},
	}

	for _, c := range cases {
		v, err := Parse([]byte(c.src))
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.src, err)
		}

		got, err := Serialize(v)
		if err != nil {
			t.Fatalf("Serialize error: %v", err)
		}

		if got != c.want {
			t.Errorf("Serialize(Parse(%q)) = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestSerializeObjectPreservesOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z": 1, "a": 2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Serialize(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"z":1,"a":2}`
	if got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestSerializeEscapesStrings(t *testing.T) {
	v, err := Parse([]byte(`"line\nbreak \"quoted\""`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Serialize(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `"line\nbreak \"quoted\""`
	if got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestSerializeRoundTripPreservesNumberLiteral(t *testing.T) {
	v, err := Parse([]byte("1.50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Serialize(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "1.50" {
		t.Errorf("Serialize should preserve source literal text, got %q", got)
	}
}
