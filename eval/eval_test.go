package eval_test

import (
	"testing"

	"github.com/ardnew/yapl/eval"
	"github.com/ardnew/yapl/value"
)

func TestEvalScalarsAreSelfEvaluating(t *testing.T) {
	env := value.NewEnvironment()

	for _, v := range []value.Value{value.Null, value.Bool(true), value.Int(3), value.String("x")} {
		got, err := eval.Eval(env, v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !value.Equal(got, v) {
			t.Errorf("scalar %v should evaluate to itself, got %v", v, got)
		}
	}
}

func TestEvalArrayEvaluatesElementsLeftToRight(t *testing.T) {
	env := value.NewEnvironment()
	env.BindNativeFunction("+", addBuiltin)

	arr := value.Array([]value.Value{
		objOf("+", value.Array([]value.Value{value.Int(1), value.Int(2)})),
		value.Int(9),
	})

	got, err := eval.Eval(env, arr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	elems, _ := got.AsArray()
	if len(elems) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elems))
	}

	if n, _ := elems[0].AsNumber(); n.Int64() != 3 {
		t.Errorf("elems[0] = %v, want 3", n.Int64())
	}
}

func TestDispatchMissingOperation(t *testing.T) {
	env := value.NewEnvironment()

	o := value.NewObject()
	o.Set("+then", value.Int(1))

	if _, err := eval.Dispatch(env, value.ObjectValue(o)); err == nil {
		t.Error("expected MissingOperation when an object has no operator key")
	}
}

func TestDispatchAmbiguousOperation(t *testing.T) {
	env := value.NewEnvironment()
	env.BindNativeFunction("+", addBuiltin)
	env.BindNativeFunction("-", addBuiltin)

	o := value.NewObject()
	o.Set("+", value.Int(1))
	o.Set("-", value.Int(2))

	if _, err := eval.Dispatch(env, value.ObjectValue(o)); err == nil {
		t.Error("expected AmbiguousOperation when an object has two operator keys")
	}
}

func TestDispatchResolvesOperatorAndApplies(t *testing.T) {
	env := value.NewEnvironment()
	env.BindNativeFunction("+", addBuiltin)

	result, err := eval.Eval(env, objOf("+", value.Array([]value.Value{value.Int(2), value.Int(3)})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n, _ := result.AsNumber(); n.Int64() != 5 {
		t.Errorf("2+3 = %v, want 5", n.Int64())
	}
}

func TestApplyNativeSpecialFormSeesRawArgsAndEnclosing(t *testing.T) {
	env := value.NewEnvironment()

	var sawEnclosing *value.Object

	env.BindNativeSpecialForm("if", func(env *value.Environment, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
		sawEnclosing = enclosing

		cond, err := eval.Eval(env, rawArgs)
		if err != nil {
			return value.Value{}, err
		}

		b, err := cond.AsBool()
		if err != nil {
			return value.Value{}, err
		}

		key := "+else"
		if b {
			key = "+then"
		}

		branch, err := enclosing.MustGet(key)
		if err != nil {
			return value.Value{}, err
		}

		return eval.Eval(env, branch)
	})

	o := value.NewObject()
	o.Set("if", value.Bool(true))
	o.Set("+then", value.String("yes"))
	o.Set("+else", value.String("no"))

	result, err := eval.Eval(env, value.ObjectValue(o))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s, _ := result.AsString(); s != "yes" {
		t.Errorf("if true branch = %q, want %q", s, "yes")
	}

	if sawEnclosing == nil {
		t.Error("special form should have received the enclosing object")
	}
}

func TestCallRejectsSpecialForm(t *testing.T) {
	env := value.NewEnvironment()
	sf := value.NewNativeSpecialForm("quote", func(env *value.Environment, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
		return rawArgs, nil
	})

	if _, err := eval.Call(env, sf, value.Int(1)); err == nil {
		t.Error("Call should reject native special forms")
	}
}

func TestApplyClosureSingletonFormals(t *testing.T) {
	root := value.NewEnvironment()
	closure := value.NewClosure(root, value.SingletonFormals("x"), objOf("$", value.String("x")))
	root.BindNativeSpecialForm("$", dollarBuiltin)

	result, err := eval.Apply(root, closure, nil, value.Int(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n, _ := result.AsNumber(); n.Int64() != 42 {
		t.Errorf("singleton-formal closure result = %v, want 42", n.Int64())
	}
}

func TestApplyClosurePositionalFormalsArgumentCountMismatch(t *testing.T) {
	root := value.NewEnvironment()
	closure := value.NewClosure(root, value.PositionalFormals([]string{"a", "b"}), value.Null)

	_, err := eval.Apply(root, closure, nil, value.Array([]value.Value{value.Int(1)}))
	if err == nil {
		t.Error("expected ArgumentCountMismatch")
	}
}

func TestApplyClosureNamedFormalsMissingArgument(t *testing.T) {
	root := value.NewEnvironment()
	closure := value.NewClosure(root, value.NamedFormals([]string{"a", "b"}), value.Null)

	obj := value.NewObject()
	obj.Set("a", value.Int(1))

	_, err := eval.Apply(root, closure, nil, value.ObjectValue(obj))
	if err == nil {
		t.Error("expected MissingNamedArgument")
	}
}

func TestCallTreatsArgumentAsPreEvaluatedForClosures(t *testing.T) {
	root := value.NewEnvironment()
	root.BindNativeSpecialForm("$", dollarBuiltin)
	closure := value.NewClosure(root, value.SingletonFormals("x"), objOf("$", value.String("x")))

	// Call passes an already-evaluated Value; it must not be re-evaluated as
	// if it were raw syntax.
	result, err := eval.Call(root, closure, value.Int(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n, _ := result.AsNumber(); n.Int64() != 7 {
		t.Errorf("Call result = %v, want 7", n.Int64())
	}
}

// --- test helpers ---

func addBuiltin(env *value.Environment, args value.Value) (value.Value, error) {
	elems, err := args.AsArray()
	if err != nil {
		return value.Value{}, err
	}

	a, err := elems[0].AsNumber()
	if err != nil {
		return value.Value{}, err
	}

	b, err := elems[1].AsNumber()
	if err != nil {
		return value.Value{}, err
	}

	return value.NumberValue(value.Add(a, b)), nil
}

func dollarBuiltin(env *value.Environment, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
	name, err := rawArgs.AsString()
	if err != nil {
		return value.Value{}, err
	}

	return env.Lookup(name)
}

func objOf(key string, v value.Value) value.Value {
	o := value.NewObject()
	o.Set(key, v)

	return value.ObjectValue(o)
}
