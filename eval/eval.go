// Package eval implements YAPL's tree-walking evaluator: a switch-on-kind
// state machine, Object dispatch, and function application.
package eval

import "github.com/ardnew/yapl/value"

// Eval walks v, evaluating it against env: scalars and Functions evaluate
// to themselves, Arrays evaluate element-wise, and Objects dispatch to
// their sole operator key.
func Eval(env *value.Environment, v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.KindNull, value.KindBool, value.KindNumber, value.KindString, value.KindFunction:
		return v, nil

	case value.KindArray:
		return evalArray(env, v)

	case value.KindObject:
		return Dispatch(env, v)

	default:
		return value.Value{}, nil
	}
}

func evalArray(env *value.Environment, v value.Value) (value.Value, error) {
	elems, err := v.AsArray()
	if err != nil {
		return value.Value{}, err
	}

	out := make([]value.Value, len(elems))

	for i, e := range elems {
		r, err := Eval(env, e)
		if err != nil {
			return value.Value{}, err
		}

		out[i] = r
	}

	return value.Array(out), nil
}
