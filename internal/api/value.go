package api

import "sort"

// Value is a decoded JSON document: an object, array, scalar, or null. The
// zero Value is absent; every accessor on it returns a zero result. Callers
// chain Get/Index and read leaves with the typed accessors, so a payload
// missing a field (or carrying the wrong type) degrades to defaults instead
// of erroring.
type Value struct {
	raw     any
	present bool
}

// NoContent is the explicit result of a call whose response body was
// intentionally empty. It exists and is null.
var NoContent = Value{present: true}

func newValue(raw any) Value {
	return Value{raw: raw, present: true}
}

// Exists reports whether the value was present in the payload at all.
func (v Value) Exists() bool { return v.present }

// IsNull reports whether the value is an explicit JSON null (or NoContent).
func (v Value) IsNull() bool { return v.present && v.raw == nil }

// Raw returns the underlying decoded value for structural comparison.
func (v Value) Raw() any { return v.raw }

// Get returns the named field of an object, or an absent Value.
func (v Value) Get(key string) Value {
	obj, ok := v.raw.(map[string]any)
	if !ok {
		return Value{}
	}
	raw, ok := obj[key]
	if !ok {
		return Value{}
	}
	return newValue(raw)
}

// Index returns the i-th element of an array, or an absent Value.
func (v Value) Index(i int) Value {
	arr, ok := v.raw.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return Value{}
	}
	return newValue(arr[i])
}

// Array returns the elements of an array value, or nil.
func (v Value) Array() []Value {
	arr, ok := v.raw.([]any)
	if !ok {
		return nil
	}
	out := make([]Value, len(arr))
	for i, raw := range arr {
		out[i] = newValue(raw)
	}
	return out
}

// Keys returns the sorted field names of an object value, or nil. Sorted
// order keeps rendered output stable across invocations.
func (v Value) Keys() []string {
	obj, ok := v.raw.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the element count of an array or field count of an object.
func (v Value) Len() int {
	switch raw := v.raw.(type) {
	case []any:
		return len(raw)
	case map[string]any:
		return len(raw)
	default:
		return 0
	}
}

// Str returns the string value, or "".
func (v Value) Str() string { return v.StrOr("") }

// StrOr returns the string value, or fallback when absent, null, empty, or
// not a string.
func (v Value) StrOr(fallback string) string {
	s, ok := v.raw.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}

// Int returns the numeric value truncated to an integer, or 0.
func (v Value) Int() int64 {
	f, ok := v.raw.(float64)
	if !ok {
		return 0
	}
	return int64(f)
}

// Float returns the numeric value, or 0.
func (v Value) Float() float64 { return v.FloatOr(0) }

// FloatOr returns the numeric value, or fallback when absent or not numeric.
func (v Value) FloatOr(fallback float64) float64 {
	f, ok := v.raw.(float64)
	if !ok {
		return fallback
	}
	return f
}

// Bool returns the boolean value, or false.
func (v Value) Bool() bool {
	b, ok := v.raw.(bool)
	return ok && b
}
