// Package env provides the read-only environment threaded through every
// layout, paint and event call.
//
// An Env is immutable once built. Deriving a variant with With copies the
// table, so the same Env can be aliased by every node of a traversal
// without coordination.
//
// Values are addressed through typed keys:
//
//	var Accent = env.NewKey("accent", graphics.RGB(0x33, 0x66, 0xcc))
//
//	e := env.With(env.New(), Accent, graphics.ColorRed)
//	c := env.Get(e, Accent) // graphics.ColorRed
package env

import (
	"encoding"
	"math"
	"slices"
)

// Key names an environment value of type T with a fallback default.
type Key[T any] struct {
	Name    string
	Default T
}

// NewKey returns a key with the given name and default value.
func NewKey[T any](name string, def T) Key[T] {
	return Key[T]{Name: name, Default: def}
}

// Env is an immutable key/value table.
// The nil *Env is valid and empty.
type Env struct {
	values  map[string]any
	version string
}

// New returns an empty environment.
func New() *Env {
	return &Env{values: map[string]any{}}
}

// With returns a copy of e with key set to value. e is not modified.
func With[T any](e *Env, key Key[T], value T) *Env {
	return e.with(key.Name, value)
}

func (e *Env) with(name string, value any) *Env {
	next := &Env{values: make(map[string]any, e.Len()+1)}
	if e != nil {
		for k, v := range e.values {
			next.values[k] = v
		}
		next.version = e.version
	}
	next.values[name] = value
	return next
}

// Get returns the value stored for key, or key.Default if it is missing or
// cannot be decoded as T.
func Get[T any](e *Env, key Key[T]) T {
	v, ok := e.Lookup(key.Name)
	if !ok {
		return key.Default
	}
	if t, ok := decode[T](v); ok {
		return t
	}
	return key.Default
}

// Lookup returns the raw value stored under name.
func (e *Env) Lookup(name string) (any, bool) {
	if e == nil {
		return nil, false
	}
	v, ok := e.values[name]
	return v, ok
}

// Len returns the number of stored values.
func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return len(e.values)
}

// Keys returns the stored names in sorted order.
func (e *Env) Keys() []string {
	if e == nil {
		return nil
	}
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Version returns the theme version the environment was loaded from,
// or "" for environments built in code.
func (e *Env) Version() string {
	if e == nil {
		return ""
	}
	return e.version
}

// decode converts a stored value to T. Numbers widen between the integer
// and float kinds YAML produces; strings go through encoding.TextUnmarshaler.
func decode[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var out T
	switch p := any(&out).(type) {
	case *float64:
		switch n := v.(type) {
		case int:
			*p = float64(n)
			return out, true
		case int64:
			*p = float64(n)
			return out, true
		case float32:
			*p = float64(n)
			return out, true
		}
	case *int:
		switch n := v.(type) {
		case int64:
			*p = int(n)
			return out, true
		case float64:
			if n == math.Trunc(n) {
				*p = int(n)
				return out, true
			}
		}
	}
	if s, ok := v.(string); ok {
		if u, ok := any(&out).(encoding.TextUnmarshaler); ok {
			if err := u.UnmarshalText([]byte(s)); err == nil {
				return out, true
			}
		}
	}
	var zero T
	return zero, false
}
