package eval

import (
	"strings"

	"github.com/ardnew/yapl/value"
	"github.com/ardnew/yapl/yerr"
)

// isConfigurationKey reports whether k is a configuration key: length > 1
// AND begins with "+". Single-character keys (including the bare "+" and
// "$") are always operator candidates.
func isConfigurationKey(k string) bool {
	return len(k) > 1 && strings.HasPrefix(k, "+")
}

// Dispatch selects the sole operator key of o, resolves it in env, and
// applies the bound Function to the raw argument.
func Dispatch(env *value.Environment, v value.Value) (value.Value, error) {
	o, err := v.AsObject()
	if err != nil {
		return value.Value{}, err
	}

	var (
		operatorKey string
		found       bool
		candidates  []string
	)

	o.Each(func(k string, _ value.Value) bool {
		if !isConfigurationKey(k) {
			candidates = append(candidates, k)
		}

		return true
	})

	switch len(candidates) {
	case 0:
		return value.Value{}, yerr.MissingOperation(o.Keys())
	case 1:
		operatorKey = candidates[0]
		found = true
	default:
		return value.Value{}, yerr.AmbiguousOperation(candidates)
	}

	if !found {
		return value.Value{}, yerr.MissingOperation(o.Keys())
	}

	rawArgs, _ := o.Get(operatorKey)

	op, err := env.Lookup(operatorKey)
	if err != nil {
		return value.Value{}, err
	}

	fn, err := op.AsFunction()
	if err != nil {
		return value.Value{}, err
	}

	return Apply(env, fn, o, rawArgs)
}
