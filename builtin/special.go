package builtin

import (
	"path/filepath"

	"github.com/ardnew/yapl/document"
	"github.com/ardnew/yapl/eval"
	"github.com/ardnew/yapl/value"
	"github.com/ardnew/yapl/yerr"
)

// bindSpecialForms binds the special forms: `$`, `quote`, `if`, `lambda`,
// `let`, `export`, `import`.
func bindSpecialForms(env *value.Environment) {
	env.BindNativeSpecialForm("$", biDollar)
	env.BindNativeSpecialForm("quote", biQuote)
	env.BindNativeSpecialForm("if", biIf)
	env.BindNativeSpecialForm("lambda", biLambda)
	env.BindNativeSpecialForm("let", biLet)
	env.BindNativeSpecialForm("export", biExport)
	env.BindNativeSpecialForm("import", biImport)
}

// sibling reads a "+"-prefixed configuration key from the object enclosing a
// special form's invocation, failing with UnknownKey if absent.
func sibling(enclosing *value.Object, key string) (value.Value, error) {
	return enclosing.MustGet(key)
}

func biDollar(env *value.Environment, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
	name, err := rawArgs.AsString()
	if err != nil {
		return value.Value{}, err
	}

	return env.Lookup(name)
}

func biQuote(env *value.Environment, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
	return rawArgs, nil
}

func biIf(env *value.Environment, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
	cond, err := eval.Eval(env, rawArgs)
	if err != nil {
		return value.Value{}, err
	}

	b, err := cond.AsBool()
	if err != nil {
		return value.Value{}, err
	}

	if b {
		thenBranch, err := sibling(enclosing, "+then")
		if err != nil {
			return value.Value{}, err
		}

		return eval.Eval(env, thenBranch)
	}

	elseBranch, err := sibling(enclosing, "+else")
	if err != nil {
		return value.Value{}, err
	}

	return eval.Eval(env, elseBranch)
}

func biLambda(env *value.Environment, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
	formals, err := formalsFromShape(rawArgs)
	if err != nil {
		return value.Value{}, err
	}

	body, err := sibling(enclosing, "+in")
	if err != nil {
		return value.Value{}, err
	}

	return value.FunctionValue(value.NewClosure(env, formals, body)), nil
}

// formalsFromShape infers a Formals shape from the un-evaluated lambda
// argument: a String is a Singleton, an Array of Strings is Positional, an
// Object is Named (by its own key order), anything else is
// InvalidType.
func formalsFromShape(raw value.Value) (value.Formals, error) {
	switch raw.Kind() {
	case value.KindString:
		name, _ := raw.AsString()

		return value.SingletonFormals(name), nil

	case value.KindArray:
		elems, _ := raw.AsArray()

		names := make([]string, len(elems))

		for i, e := range elems {
			n, err := e.AsString()
			if err != nil {
				return value.Formals{}, yerr.InvalidType("formal parameters (string, array of strings, or object)", e.Kind().String())
			}

			names[i] = n
		}

		return value.PositionalFormals(names), nil

	case value.KindObject:
		obj, _ := raw.AsObject()

		return value.NamedFormals(obj.Keys()), nil

	default:
		return value.Formals{}, yerr.InvalidType("formal parameters (string, array of strings, or object)", raw.Kind().String())
	}
}

func biLet(env *value.Environment, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
	bindingsObj, err := rawArgs.AsObject()
	if err != nil {
		return value.Value{}, err
	}

	child := value.NewObject()

	var evalErr error

	bindingsObj.Each(func(name string, expr value.Value) bool {
		v, err := eval.Eval(env, expr)
		if err != nil {
			evalErr = err

			return false
		}

		child.Set(name, v)

		return true
	})

	if evalErr != nil {
		return value.Value{}, evalErr
	}

	body, err := sibling(enclosing, "+in")
	if err != nil {
		return value.Value{}, err
	}

	return eval.Eval(env.Extend(child), body)
}

func biExport(env *value.Environment, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
	exprObj, err := rawArgs.AsObject()
	if err != nil {
		return value.Value{}, err
	}

	out := value.NewObject()

	var evalErr error

	exprObj.Each(func(name string, expr value.Value) bool {
		v, err := eval.Eval(env, expr)
		if err != nil {
			evalErr = err

			return false
		}

		out.Set(name, v)

		return true
	})

	if evalErr != nil {
		return value.Value{}, evalErr
	}

	return value.ObjectValue(out), nil
}

func biImport(env *value.Environment, enclosing *value.Object, rawArgs value.Value) (value.Value, error) {
	spec, err := rawArgs.AsObject()
	if err != nil {
		return value.Value{}, err
	}

	currentFile, err := env.Lookup("__file__")
	if err != nil {
		return value.Value{}, err
	}

	filePath, err := currentFile.AsString()
	if err != nil {
		return value.Value{}, err
	}

	baseDir := filepath.Dir(filePath)

	child := value.NewObject()

	var loopErr error

	spec.Each(func(moduleName string, bindingSpec value.Value) bool {
		modulePath := filepath.Join(baseDir, moduleName+".yapl")

		exports, err := loadModule(modulePath)
		if err != nil {
			loopErr = err

			return false
		}

		switch bindingSpec.Kind() {
		case value.KindString:
			localName, _ := bindingSpec.AsString()
			child.Set(localName, exports)

		case value.KindNull:
			exportsObj, err := exports.AsObject()
			if err != nil {
				loopErr = err

				return false
			}

			exportsObj.Each(func(k string, v value.Value) bool {
				child.Set(k, v)

				return true
			})

		default:
			loopErr = yerr.InvalidType("import mapping (string or null)", bindingSpec.Kind().String())

			return false
		}

		return true
	})

	if loopErr != nil {
		return value.Value{}, loopErr
	}

	body, err := sibling(enclosing, "+in")
	if err != nil {
		return value.Value{}, err
	}

	return eval.Eval(env.Extend(child), body)
}

// loadModule reads, parses, and evaluates modulePath in a fresh root
// environment, returning its exports. Repeated imports of an unchanged file
// within this process reuse the cached exports.
func loadModule(modulePath string) (value.Value, error) {
	abs, err := filepath.Abs(modulePath)
	if err != nil {
		return value.Value{}, err
	}

	data, modTime, err := eval.ReadFile(abs)
	if err != nil {
		return value.Value{}, err
	}

	if exports, ok := moduleCache.Lookup(abs, modTime); ok {
		return exports, nil
	}

	tree, err := document.Parse(data)
	if err != nil {
		return value.Value{}, err
	}

	moduleEnv, err := NewRoot(abs)
	if err != nil {
		return value.Value{}, err
	}

	exports, err := eval.Eval(moduleEnv, tree)
	if err != nil {
		return value.Value{}, err
	}

	moduleCache.Store(abs, modTime, exports)

	return exports, nil
}
