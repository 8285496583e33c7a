package document

import (
	"encoding/json"
	"strings"

	"github.com/ardnew/yapl/value"
	"github.com/ardnew/yapl/yerr"
)

// Serialize renders v as canonical JSON text: Object key order follows the
// Value's insertion order, and Function values serialize to the literal
// string "#function".
func Serialize(v value.Value) (string, error) {
	var b strings.Builder

	if err := writeValue(&b, v); err != nil {
		return "", err
	}

	return b.String(), nil
}

func writeValue(b *strings.Builder, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		b.WriteString("null")

		return nil

	case value.KindBool:
		bv, _ := v.AsBool()
		if bv {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}

		return nil

	case value.KindNumber:
		n, _ := v.AsNumber()
		b.WriteString(n.Literal())

		return nil

	case value.KindString:
		s, _ := v.AsString()

		return writeJSONString(b, s)

	case value.KindArray:
		return writeArray(b, v)

	case value.KindObject:
		return writeObject(b, v)

	case value.KindFunction:
		return writeJSONString(b, "#function")

	default:
		return yerr.ErrSerialization
	}
}

func writeArray(b *strings.Builder, v value.Value) error {
	elems, err := v.AsArray()
	if err != nil {
		return err
	}

	b.WriteByte('[')

	for i, e := range elems {
		if i > 0 {
			b.WriteByte(',')
		}

		if err := writeValue(b, e); err != nil {
			return err
		}
	}

	b.WriteByte(']')

	return nil
}

func writeObject(b *strings.Builder, v value.Value) error {
	o, err := v.AsObject()
	if err != nil {
		return err
	}

	b.WriteByte('{')

	first := true
	var writeErr error

	o.Each(func(k string, val value.Value) bool {
		if !first {
			b.WriteByte(',')
		}

		first = false

		if err := writeJSONString(b, k); err != nil {
			writeErr = err

			return false
		}

		b.WriteByte(':')

		if err := writeValue(b, val); err != nil {
			writeErr = err

			return false
		}

		return true
	})

	if writeErr != nil {
		return writeErr
	}

	b.WriteByte('}')

	return nil
}

// writeJSONString escapes s using encoding/json's string encoding rules,
// reusing the standard library's escaper instead of hand-rolling one.
func writeJSONString(b *strings.Builder, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return yerr.ErrSerialization.Wrap(err)
	}

	b.Write(encoded)

	return nil
}
