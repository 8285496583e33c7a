package builtin

import (
	"fmt"
	"io"
	"os"

	"github.com/ardnew/yapl/document"
	"github.com/ardnew/yapl/eval"
	"github.com/ardnew/yapl/value"
	"github.com/ardnew/yapl/yerr"
)

// bindIO binds the remaining regular functions: `map`, `deserialize`,
// `serialize`, `print`, `println`, `eval`, `array-len`, `array-get`,
// `object-keys`, `object-get`, `type-of`.
func bindIO(env *value.Environment) {
	bindIOTo(env, os.Stdout)
}

// bindIOTo is split out from bindIO so tests can capture print/println
// output on an arbitrary io.Writer instead of the process's real stdout.
func bindIOTo(env *value.Environment, stdout io.Writer) {
	env.BindNativeFunction("map", func(env *value.Environment, args value.Value) (value.Value, error) {
		elems, err := pair(args)
		if err != nil {
			return value.Value{}, err
		}

		fn, err := elems[0].AsFunction()
		if err != nil {
			return value.Value{}, err
		}

		xs, err := elems[1].AsArray()
		if err != nil {
			return value.Value{}, err
		}

		out := make([]value.Value, len(xs))

		for i, x := range xs {
			r, err := eval.Call(env, fn, x)
			if err != nil {
				return value.Value{}, err
			}

			out[i] = r
		}

		return value.Array(out), nil
	})

	env.BindNativeFunction("deserialize", func(env *value.Environment, args value.Value) (value.Value, error) {
		s, err := args.AsString()
		if err != nil {
			return value.Value{}, err
		}

		return document.Parse([]byte(s))
	})

	env.BindNativeFunction("serialize", func(env *value.Environment, args value.Value) (value.Value, error) {
		s, err := document.Serialize(args)
		if err != nil {
			return value.Value{}, err
		}

		return value.String(s), nil
	})

	env.BindNativeFunction("print", func(env *value.Environment, args value.Value) (value.Value, error) {
		s, err := args.AsString()
		if err != nil {
			return value.Value{}, err
		}

		if _, err := fmt.Fprint(stdout, s); err != nil {
			return value.Value{}, yerr.ErrIO.Wrap(err)
		}

		return value.Null, nil
	})

	env.BindNativeFunction("println", func(env *value.Environment, args value.Value) (value.Value, error) {
		s, err := args.AsString()
		if err != nil {
			return value.Value{}, err
		}

		if _, err := fmt.Fprintln(stdout, s); err != nil {
			return value.Value{}, yerr.ErrIO.Wrap(err)
		}

		return value.Null, nil
	})

	env.BindNativeFunction("eval", func(env *value.Environment, args value.Value) (value.Value, error) {
		return eval.Eval(env, args)
	})

	env.BindNativeFunction("array-len", func(env *value.Environment, args value.Value) (value.Value, error) {
		xs, err := args.AsArray()
		if err != nil {
			return value.Value{}, err
		}

		return value.Int(int64(len(xs))), nil
	})

	env.BindNativeFunction("array-get", func(env *value.Environment, args value.Value) (value.Value, error) {
		elems, err := pair(args)
		if err != nil {
			return value.Value{}, err
		}

		xs, err := elems[0].AsArray()
		if err != nil {
			return value.Value{}, err
		}

		idxNum, err := elems[1].AsNumber()
		if err != nil {
			return value.Value{}, err
		}

		i := int(idxNum.Int64())
		if i < 0 || i >= len(xs) {
			return value.Value{}, yerr.InvalidIndex(i, len(xs))
		}

		return xs[i], nil
	})

	env.BindNativeFunction("object-keys", func(env *value.Environment, args value.Value) (value.Value, error) {
		o, err := args.AsObject()
		if err != nil {
			return value.Value{}, err
		}

		keys := o.Keys()
		out := make([]value.Value, len(keys))

		for i, k := range keys {
			out[i] = value.String(k)
		}

		return value.Array(out), nil
	})

	env.BindNativeFunction("object-get", func(env *value.Environment, args value.Value) (value.Value, error) {
		elems, err := pair(args)
		if err != nil {
			return value.Value{}, err
		}

		o, err := elems[0].AsObject()
		if err != nil {
			return value.Value{}, err
		}

		k, err := elems[1].AsString()
		if err != nil {
			return value.Value{}, err
		}

		return o.MustGet(k)
	})

	env.BindNativeFunction("type-of", func(env *value.Environment, args value.Value) (value.Value, error) {
		return value.String(args.Kind().String()), nil
	})
}
