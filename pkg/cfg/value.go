package cfg

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "null"
	}
}

// Value is a configuration value: a string, number, bool, object, array
// or the explicit null marker. The zero Value is null.
//
// Only null counts as absent. false, 0 and "" are present values and are
// returned as-is by the accessors, never replaced by a default.
type Value struct {
	kind Kind
	raw  any
}

// Null returns the explicit null marker.
func Null() Value { return Value{} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, raw: s} }

// Number returns a number Value.
func Number(f float64) Value { return Value{kind: KindNumber, raw: f} }

// Bool returns a bool Value.
func Bool(b bool) Value { return Value{kind: KindBool, raw: b} }

// Object returns an object Value. A nil map becomes an empty object.
func Object(m map[string]any) Value {
	if m == nil {
		m = map[string]any{}
	}
	return Value{kind: KindObject, raw: m}
}

// Array returns an array Value. A nil slice becomes an empty array.
func Array(a []any) Value {
	if a == nil {
		a = []any{}
	}
	return Value{kind: KindArray, raw: a}
}

// ValueOf converts a Go value into a Value.
//
// Conversion is permissive: types without a direct mapping are passed
// through encoding/json, and anything json cannot encode falls back to
// its fmt representation.
func ValueOf(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case *Value:
		if t == nil {
			return Null()
		}
		return *t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return Number(f)
		}
		return String(t.String())
	case map[string]any:
		return Object(t)
	case []any:
		return Array(t)
	case []string:
		a := make([]any, len(t))
		for i, s := range t {
			a[i] = s
		}
		return Array(a)
	case map[string]Value:
		m := make(map[string]any, len(t))
		for k, v := range t {
			m[k] = v.Raw()
		}
		return Object(m)
	case []Value:
		a := make([]any, len(t))
		for i, v := range t {
			a[i] = v.Raw()
		}
		return Array(a)
	}

	b, err := json.Marshal(x)
	if err != nil {
		return String(fmt.Sprint(x))
	}
	var decoded any
	if err := json.Unmarshal(b, &decoded); err != nil {
		return String(fmt.Sprint(x))
	}
	return ValueOf(decoded)
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null marker.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Raw returns the underlying Go value: nil, string, float64, bool,
// map[string]any or []any.
func (v Value) Raw() any { return v.raw }

// Str returns the string held by v.
func (v Value) Str() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok && v.kind == KindString
}

// Float returns the number held by v.
func (v Value) Float() (float64, bool) {
	f, ok := v.raw.(float64)
	return f, ok && v.kind == KindNumber
}

// Int returns the number held by v if it is integral.
func (v Value) Int() (int, bool) {
	f, ok := v.Float()
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// Boolean returns the bool held by v.
func (v Value) Boolean() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, ok && v.kind == KindBool
}

// Map returns the object held by v. The map is shared, not copied.
func (v Value) Map() (map[string]any, bool) {
	m, ok := v.raw.(map[string]any)
	return m, ok && v.kind == KindObject
}

// Slice returns the array held by v. The slice is shared, not copied.
func (v Value) Slice() ([]any, bool) {
	a, ok := v.raw.([]any)
	return a, ok && v.kind == KindArray
}

// Equal reports whether v and o hold the same kind and content.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && reflect.DeepEqual(v.raw, o.raw)
}

// String renders v for display: strings verbatim, everything else as JSON.
func (v Value) String() string {
	if s, ok := v.Str(); ok {
		return s
	}
	b, err := json.Marshal(v.raw)
	if err != nil {
		return fmt.Sprint(v.raw)
	}
	return string(b)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(b []byte) error {
	var decoded any
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	*v = ValueOf(decoded)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.raw, nil
}
