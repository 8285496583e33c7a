// Package value implements YAPL's immutable value model: a tagged sum of
// Null, Bool, Number, String, Array, Object, and Function, its type
// predicates/accessors, and structural equality.
//
// Arrays and Objects are shared by reference; copying a Value never performs
// a deep copy. Ordinary Go garbage collection owns lifetime: closures and
// environments form DAGs (there is no recursive let), so plain reachability
// is sufficient without reference counting.
package value

import (
	"strconv"

	"github.com/ardnew/yapl/yerr"
)

// Kind discriminates the Value variants.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindFunction
)

// String names a Kind the way error messages report it (InvalidType's
// "observed" field).
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Value is a single immutable node in a YAPL value tree.
//
// Exactly the field(s) matching Kind are meaningful; the rest are zero.
type Value struct {
	kind Kind
	b    bool
	num  Number
	str  string
	arr  []Value
	obj  *Object
	fn   *Function
}

// Null is the singleton null value.
var Null = Value{kind: KindNull}

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int constructs a Number value from an int64, preserving its integer-ness.
func Int(i int64) Value { return Value{kind: KindNumber, num: NumberFromInt(i)} }

// Float constructs a Number value from a float64.
func Float(f float64) Value { return Value{kind: KindNumber, num: NumberFromFloat(f)} }

// NumberValue wraps an already-built Number.
func NumberValue(n Number) Value { return Value{kind: KindNumber, num: n} }

// String constructs a String value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array constructs an Array value. The slice is taken by reference: callers
// must not mutate it afterward.
func Array(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}

	return Value{kind: KindArray, arr: elems}
}

// ObjectValue wraps an already-built *Object.
func ObjectValue(o *Object) Value { return Value{kind: KindObject, obj: o} }

// FunctionValue wraps a *Function.
func FunctionValue(f *Function) Value { return Value{kind: KindFunction, fn: f} }

// Kind returns the Value's variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the Null singleton.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the wrapped bool, or InvalidType if v is not a Bool.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, yerr.InvalidType("bool", v.kind.String())
	}

	return v.b, nil
}

// AsNumber returns the wrapped Number, or InvalidType if v is not a Number.
func (v Value) AsNumber() (Number, error) {
	if v.kind != KindNumber {
		return Number{}, yerr.InvalidType("number", v.kind.String())
	}

	return v.num, nil
}

// AsF64 returns the Number as a finite float64, or InvalidType/InvalidNumber.
func (v Value) AsF64() (float64, error) {
	n, err := v.AsNumber()
	if err != nil {
		return 0, err
	}

	return n.Float64()
}

// AsString returns the wrapped string, or InvalidType if v is not a String.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", yerr.InvalidType("string", v.kind.String())
	}

	return v.str, nil
}

// AsArray returns the wrapped slice, or InvalidType if v is not an Array.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, yerr.InvalidType("array", v.kind.String())
	}

	return v.arr, nil
}

// AsObject returns the wrapped *Object, or InvalidType if v is not an Object.
func (v Value) AsObject() (*Object, error) {
	if v.kind != KindObject {
		return nil, yerr.InvalidType("object", v.kind.String())
	}

	return v.obj, nil
}

// AsFunction returns the wrapped *Function, or InvalidType if v is not a
// Function.
func (v Value) AsFunction() (*Function, error) {
	if v.kind != KindFunction {
		return nil, yerr.InvalidType("function", v.kind.String())
	}

	return v.fn, nil
}

// Equal implements deep structural equality for
// Null/Bool/Number/String/Array/Object (element order matters for Arrays,
// key order does not for Objects), and reference-distinct (never
// equal) comparison for Function.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.num.Equal(b.num)
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}

		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}

		return true
	case KindObject:
		return objectEqual(a.obj, b.obj)
	case KindFunction:
		return false
	default:
		return false
	}
}

func objectEqual(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}

	for _, k := range a.Keys() {
		av, _ := a.Get(k)

		bv, ok := b.Get(k)
		if !ok || !Equal(av, bv) {
			return false
		}
	}

	return true
}

// FormatNumberLiteral renders a float64 the way canonical JSON would, used
// for Number values constructed purely from host arithmetic (no source
// literal to preserve).
func FormatNumberLiteral(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
