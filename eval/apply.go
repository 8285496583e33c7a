package eval

import (
	"github.com/ardnew/yapl/value"
	"github.com/ardnew/yapl/yerr"
)

// Apply dispatches a resolved operator Function to its raw (un-evaluated)
// argument, using whichever of the three calling conventions fn's kind
// selects.
func Apply(env *value.Environment, fn *value.Function, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
	switch fn.Kind() {
	case value.FuncNative:
		args, err := Eval(env, rawArgs)
		if err != nil {
			return value.Value{}, err
		}

		return fn.Native()(env, args)

	case value.FuncNativeSpecialForm:
		return fn.SpecialForm()(env, enclosing, rawArgs)

	case value.FuncClosure:
		return applyClosure(env, fn, rawArgs, false)

	default:
		return value.Value{}, yerr.InvalidOperation("unknown function kind")
	}
}

// Call invokes fn on an already-evaluated Value, the convention used by map
// and the transform shell. A native special form cannot be called this way.
func Call(env *value.Environment, fn *value.Function, arg value.Value) (value.Value, error) {
	switch fn.Kind() {
	case value.FuncNative:
		return fn.Native()(env, arg)

	case value.FuncNativeSpecialForm:
		return value.Value{}, yerr.InvalidOperation("cannot call special form")

	case value.FuncClosure:
		return applyClosure(env, fn, arg, true)

	default:
		return value.Value{}, yerr.InvalidOperation("unknown function kind")
	}
}

// applyClosure pre-evaluates (or, when preEvaluated is true, uses directly)
// arg according to the closure's Formals shape, binds a fresh frame whose
// parent is the closure's captured environment, and evaluates its body in
// that frame.
func applyClosure(callerEnv *value.Environment, fn *value.Function, arg value.Value, preEvaluated bool) (value.Value, error) {
	formals := fn.ClosureFormals()

	bindings := value.NewObject()

	switch formals.Kind() {
	case value.FormalsSingleton:
		v := arg

		if !preEvaluated {
			var err error

			v, err = Eval(callerEnv, arg)
			if err != nil {
				return value.Value{}, err
			}
		}

		bindings.Set(formals.Name(), v)

	case value.FormalsPositional:
		elems, err := arg.AsArray()
		if err != nil {
			return value.Value{}, err
		}

		names := formals.Names()
		if len(elems) != len(names) {
			return value.Value{}, yerr.ArgumentCountMismatch(len(names), len(elems))
		}

		for i, name := range names {
			v := elems[i]

			if !preEvaluated {
				v, err = Eval(callerEnv, elems[i])
				if err != nil {
					return value.Value{}, err
				}
			}

			bindings.Set(name, v)
		}

	case value.FormalsNamed:
		obj, err := arg.AsObject()
		if err != nil {
			return value.Value{}, err
		}

		for _, name := range formals.Names() {
			raw, ok := obj.Get(name)
			if !ok {
				return value.Value{}, yerr.MissingNamedArgument(name)
			}

			v := raw

			if !preEvaluated {
				v, err = Eval(callerEnv, raw)
				if err != nil {
					return value.Value{}, err
				}
			}

			bindings.Set(name, v)
		}

	default:
		return value.Value{}, yerr.InvalidOperation("unknown formals kind")
	}

	callEnv := fn.ClosureEnv().Extend(bindings)

	return Eval(callEnv, fn.ClosureBody())
}
