package builtin

import (
	"github.com/ardnew/yapl/value"
	"github.com/ardnew/yapl/yerr"
)

// bindArithmetic binds the arithmetic and comparison built-ins: `+`, `-`,
// `*`, `/`, `eq`, `not`, `gt`, `lt`.
func bindArithmetic(env *value.Environment) {
	env.BindNativeFunction("+", func(env *value.Environment, args value.Value) (value.Value, error) {
		a, b, err := numberPair(args)
		if err != nil {
			return value.Value{}, err
		}

		return value.NumberValue(value.Add(a, b)), nil
	})

	env.BindNativeFunction("-", func(env *value.Environment, args value.Value) (value.Value, error) {
		a, b, err := numberPair(args)
		if err != nil {
			return value.Value{}, err
		}

		return value.NumberValue(value.Sub(a, b)), nil
	})

	env.BindNativeFunction("*", func(env *value.Environment, args value.Value) (value.Value, error) {
		a, b, err := numberPair(args)
		if err != nil {
			return value.Value{}, err
		}

		return value.NumberValue(value.Mul(a, b)), nil
	})

	env.BindNativeFunction("/", func(env *value.Environment, args value.Value) (value.Value, error) {
		a, b, err := numberPair(args)
		if err != nil {
			return value.Value{}, err
		}

		n, err := value.Div(a, b)
		if err != nil {
			return value.Value{}, err
		}

		return value.NumberValue(n), nil
	})

	env.BindNativeFunction("eq", func(env *value.Environment, args value.Value) (value.Value, error) {
		elems, err := pair(args)
		if err != nil {
			return value.Value{}, err
		}

		return value.Bool(value.Equal(elems[0], elems[1])), nil
	})

	env.BindNativeFunction("not", func(env *value.Environment, args value.Value) (value.Value, error) {
		b, err := args.AsBool()
		if err != nil {
			return value.Value{}, err
		}

		return value.Bool(!b), nil
	})

	env.BindNativeFunction("gt", func(env *value.Environment, args value.Value) (value.Value, error) {
		a, b, err := numberPair(args)
		if err != nil {
			return value.Value{}, err
		}

		return value.Bool(value.Greater(a, b)), nil
	})

	env.BindNativeFunction("lt", func(env *value.Environment, args value.Value) (value.Value, error) {
		a, b, err := numberPair(args)
		if err != nil {
			return value.Value{}, err
		}

		return value.Bool(value.Less(a, b)), nil
	})
}

// pair requires args to be a 2-element Array, returning its elements.
func pair(args value.Value) ([]value.Value, error) {
	elems, err := args.AsArray()
	if err != nil {
		return nil, err
	}

	if len(elems) != 2 {
		return nil, yerr.ArgumentCountMismatch(2, len(elems))
	}

	return elems, nil
}

// numberPair requires args to be a 2-element Array of Numbers.
func numberPair(args value.Value) (value.Number, value.Number, error) {
	elems, err := pair(args)
	if err != nil {
		return value.Number{}, value.Number{}, err
	}

	a, err := elems[0].AsNumber()
	if err != nil {
		return value.Number{}, value.Number{}, err
	}

	b, err := elems[1].AsNumber()
	if err != nil {
		return value.Number{}, value.Number{}, err
	}

	return a, b, nil
}
