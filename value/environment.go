package value

import "github.com/ardnew/yapl/yerr"

// Environment is a lexical scope frame: an Object-valued binding set plus an
// optional parent link.
//
// Environments are immutable after construction: Extend always allocates a
// new frame rather than mutating an existing one. A closure's captured
// Environment outlives any single call because Go's garbage collector keeps
// it alive as long as the Function referencing it is reachable — there is
// no recursive let, so environments and closures form DAGs and ordinary GC
// reachability is enough without reference counting.
type Environment struct {
	bindings *Object
	parent   *Environment
}

// NewEnvironment creates a root Environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{bindings: NewObject()}
}

// Extend returns a new child Environment whose parent is e and whose local
// frame holds bindings.
func (e *Environment) Extend(bindings *Object) *Environment {
	if bindings == nil {
		bindings = NewObject()
	}

	return &Environment{bindings: bindings, parent: e}
}

// Lookup searches the local frame then walks the parent chain, returning
// UndefinedSymbol(name) if exhausted.
func (e *Environment) Lookup(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.bindings.Get(name); ok {
			return v, nil
		}
	}

	return Value{}, yerr.UndefinedSymbol(name)
}

// Bindings returns the Environment's local (non-parent) frame, used by
// binders at root construction and by diagnostics.
func (e *Environment) Bindings() *Object { return e.bindings }

// Names returns every name bound anywhere in e's chain, nearest scope first,
// used by the REPL's completion support.
func (e *Environment) Names() []string {
	var names []string

	seen := make(map[string]bool)

	for env := e; env != nil; env = env.parent {
		for _, k := range env.bindings.Keys() {
			if !seen[k] {
				seen[k] = true

				names = append(names, k)
			}
		}
	}

	return names
}

// Bind sets name to v in e's local frame. Only used during construction of a
// fresh frame (root environment setup, or building a child frame before it is
// published): an Environment must never acquire bindings after it has been
// handed to evaluation.
func (e *Environment) Bind(name string, v Value) { e.bindings.Set(name, v) }

// BindString is a binder used at root construction for string constants
// (e.g. the reserved __file__ symbol).
func (e *Environment) BindString(name, s string) { e.Bind(name, String(s)) }

// BindNativeFunction binds name to a Native Function built from fn.
func (e *Environment) BindNativeFunction(name string, fn NativeFunc) {
	e.Bind(name, FunctionValue(NewNativeFunction(name, fn)))
}

// BindNativeSpecialForm binds name to a Native special-form Function built
// from fn.
func (e *Environment) BindNativeSpecialForm(name string, fn NativeSpecialForm) {
	e.Bind(name, FunctionValue(NewNativeSpecialForm(name, fn)))
}
