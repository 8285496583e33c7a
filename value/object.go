package value

import "github.com/ardnew/yapl/yerr"

// Object is an insertion-ordered string-keyed mapping to Value: keys are
// unique and iteration order always matches the order keys were first set,
// not sorted order.
//
// A parallel key-order slice plus an index map gives O(1) lookup and O(n)
// ordered iteration without re-sorting.
type Object struct {
	keys []string
	idx  map[string]int
	vals []Value
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{idx: make(map[string]int)}
}

// Set inserts or overwrites the value for key, appending it to the
// insertion-order list on first insertion.
func (o *Object) Set(key string, v Value) {
	if o.idx == nil {
		o.idx = make(map[string]int)
	}

	if i, ok := o.idx[key]; ok {
		o.vals[i] = v

		return
	}

	o.idx[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Get looks up key, returning (value, true) if present.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}

	i, ok := o.idx[key]
	if !ok {
		return Value{}, false
	}

	return o.vals[i], true
}

// MustGet looks up key, returning UnknownKey(key) if absent.
func (o *Object) MustGet(key string) (Value, error) {
	v, ok := o.Get(key)
	if !ok {
		return Value{}, yerr.UnknownKey(key)
	}

	return v, nil
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)

	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the keys in insertion order. The returned slice must not be
// mutated by the caller.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return o.keys
}

// Each calls fn for every key/value pair in insertion order, stopping early
// if fn returns false.
func (o *Object) Each(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}

	for i, k := range o.keys {
		if !fn(k, o.vals[i]) {
			return
		}
	}
}

// Clone returns a shallow copy of o: a new Object sharing the same Values
// (which are themselves immutable), safe to Set on independently.
func (o *Object) Clone() *Object {
	n := NewObject()
	o.Each(func(k string, v Value) bool {
		n.Set(k, v)

		return true
	})

	return n
}
