// Package value bridges Go's dynamically typed value trees and the token
// codec in writer/reader. It is the only component aware of both Go's
// value representation and the SMILE wire grammar; writer and reader know
// nothing about either side's host language value model.
package value

// Object is an ordered string-keyed map: a small slice of key/value pairs
// plus an index for O(1) lookup, offered as a round-trip-friendly
// alternative to map[string]any, whose iteration order Go does not define.
// DecodeObject builds one of these; DecodeValue's default path still
// builds a plain map[string]any for callers who do not need order.
type Object struct {
	keys   []string
	values []any
	index  map[string]int
}

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set inserts or overwrites key, preserving its original position on
// overwrite and appending on first insert.
func (o *Object) Set(key string, v any) {
	if i, ok := o.index[key]; ok {
		o.values[i] = v
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)
}

// SetAny stringifies a non-string key (bool, nil, numeric, *big.Int) using
// the same rules SMILE applies to non-string object keys, then stores it.
// Use this when building an Object from a source that doesn't already
// carry string keys, e.g. decoding a foreign format into a SMILE document.
func (o *Object) SetAny(key any, v any) error {
	k, err := stringifyKey(key)
	if err != nil {
		return err
	}
	o.Set(k, v)
	return nil
}

// Get returns the value stored at key and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.values[i], true
}

// Len returns the number of entries.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the object's keys in insertion order. The returned slice
// must not be mutated.
func (o *Object) Keys() []string { return o.keys }

// Range calls f for each entry in insertion order, stopping early if f
// returns false.
func (o *Object) Range(f func(key string, v any) bool) {
	for i, k := range o.keys {
		if !f(k, o.values[i]) {
			return
		}
	}
}
