package config

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	suzuerrors "github.com/suzu-editor/suzu/internal/errors"
)

// Kind is the runtime tag of a Value.
type Kind int

// Value kinds. The zero Kind is the discarded sentinel, so a zero Value is
// never mistaken for document content.
const (
	KindDiscarded Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDiscarded:
		return "discarded"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a configuration document, tagged with its kind.
//
// The payload is held in its canonical Go form: nil, bool, int64, float64,
// string, []any or map[string]any. Values handed out by a Store are copies;
// mutating what Interface returns never reaches the store.
type Value struct {
	kind Kind
	raw  any
}

// Discarded returns the sentinel reported by failed reads.
func Discarded() Value { return Value{} }

// Null returns a null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, raw: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, raw: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, raw: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, raw: s} }

// Array returns an array of copies of elems. Discarded elements become null.
func Array(elems ...Value) Value {
	out := make([]any, len(elems))
	for i, elem := range elems {
		out[i] = deepCopy(elem.raw)
	}
	return Value{kind: KindArray, raw: out}
}

// Object returns an object of copies of fields. Discarded fields become null.
func Object(fields map[string]Value) Value {
	out := make(map[string]any, len(fields))
	for k, elem := range fields {
		out[k] = deepCopy(elem.raw)
	}
	return Value{kind: KindObject, raw: out}
}

// NewValue converts a Go value into a Value. Maps must have string keys.
// Nested Values are accepted anywhere in x.
func NewValue(x any) (Value, error) {
	raw, err := normalize(x)
	if err != nil {
		return Discarded(), err
	}
	return wrap(raw), nil
}

// ParseValue parses JSON text, with comments allowed, into a Value.
func ParseValue(data []byte) (Value, error) {
	raw, err := parseDocument(data)
	if err != nil {
		return Discarded(), suzuerrors.Wrap(suzuerrors.ErrCodeParse, "malformed document", err)
	}
	return wrap(raw), nil
}

// wrap tags an already canonical payload.
func wrap(raw any) Value {
	switch raw.(type) {
	case nil:
		return Null()
	case bool:
		return Value{kind: KindBool, raw: raw}
	case int64:
		return Value{kind: KindInt, raw: raw}
	case float64:
		return Value{kind: KindFloat, raw: raw}
	case string:
		return Value{kind: KindString, raw: raw}
	case []any:
		return Value{kind: KindArray, raw: raw}
	case map[string]any:
		return Value{kind: KindObject, raw: raw}
	default:
		return Discarded()
	}
}

// Kind returns the runtime tag.
func (v Value) Kind() Kind { return v.kind }

// IsDiscarded reports whether v is the failed-read sentinel.
func (v Value) IsDiscarded() bool { return v.kind == KindDiscarded }

// IsNull reports whether v is a JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Interface returns a deep copy of the payload in canonical Go form.
// The discarded sentinel yields nil.
func (v Value) Interface() any {
	if v.kind == KindDiscarded {
		return nil
	}
	return deepCopy(v.raw)
}

// Has reports whether an object value contains key.
func (v Value) Has(key string) bool {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return false
	}
	_, exists := m[key]
	return exists
}

// Len returns the number of elements of an array or object, or zero.
func (v Value) Len() int {
	switch n := v.raw.(type) {
	case []any:
		return len(n)
	case map[string]any:
		return len(n)
	default:
		return 0
	}
}

// Keys returns the sorted keys of an object value.
func (v Value) Keys() []string {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two values have the same kind and content.
// Two discarded sentinels are equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	return equalRaw(v.raw, other.raw)
}

// String renders v as compact JSON.
func (v Value) String() string {
	return v.Format(false)
}

// Format renders v as JSON with sorted keys, indented like Serialize when
// pretty is set.
func (v Value) Format(pretty bool) string {
	if v.kind == KindDiscarded {
		return "<discarded>"
	}
	text, err := encode(v.raw, pretty)
	if err != nil {
		return fmt.Sprintf("<invalid %s>", v.kind)
	}
	return text
}

// MarshalJSON implements json.Marshaler. The sentinel marshals as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindDiscarded {
		return []byte("null"), nil
	}
	text, err := encode(v.raw, false)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// normalize converts x into canonical form, copying every container.
func normalize(x any) (any, error) {
	switch n := x.(type) {
	case nil:
		return nil, nil
	case Value:
		if n.kind == KindDiscarded {
			return nil, suzuerrors.InvalidParameter("discarded value cannot be stored")
		}
		if err := checkFinite(n.raw); err != nil {
			return nil, err
		}
		return deepCopy(n.raw), nil
	case bool:
		return n, nil
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return normalizeUint(uint64(n))
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return normalizeUint(n)
	case float32:
		return normalizeFloat(float64(n))
	case float64:
		return normalizeFloat(n)
	case string:
		return n, nil
	case []byte:
		return string(n), nil
	case json.Number:
		return numberValue(string(n))
	case []any:
		out := make([]any, len(n))
		for i, elem := range n {
			c, err := normalize(elem)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, elem := range n {
			c, err := normalize(elem)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			c, err := normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, suzuerrors.InvalidParameter(fmt.Sprintf("map key type %s is not string", rv.Type().Key()))
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			c, err := normalize(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = c
		}
		return out, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return normalize(rv.Elem().Interface())
	}

	return nil, suzuerrors.InvalidParameter(fmt.Sprintf("unsupported value type %T", x))
}

func normalizeUint(u uint64) (any, error) {
	if u > math.MaxInt64 {
		return float64(u), nil
	}
	return int64(u), nil
}

func normalizeFloat(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, suzuerrors.InvalidParameter("NaN and Inf are not representable")
	}
	return f, nil
}

// numberValue classifies a JSON number literal. Literals without a fraction
// or exponent are integers; integers outside int64 fall back to float64.
func numberValue(lit string) (any, error) {
	isFloat := false
	for i := 0; i < len(lit); i++ {
		switch lit[i] {
		case '.', 'e', 'E':
			isFloat = true
		}
	}
	if !isFloat {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return i, nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", lit, err)
	}
	return f, nil
}

// checkFinite rejects NaN and Inf anywhere in a canonical payload.
func checkFinite(raw any) error {
	switch n := raw.(type) {
	case float64:
		_, err := normalizeFloat(n)
		return err
	case []any:
		for _, elem := range n {
			if err := checkFinite(elem); err != nil {
				return err
			}
		}
	case map[string]any:
		for _, elem := range n {
			if err := checkFinite(elem); err != nil {
				return err
			}
		}
	}
	return nil
}

func deepCopy(raw any) any {
	switch n := raw.(type) {
	case []any:
		out := make([]any, len(n))
		for i, elem := range n {
			out[i] = deepCopy(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, elem := range n {
			out[k] = deepCopy(elem)
		}
		return out
	default:
		return raw
	}
}

func equalRaw(a, b any) bool {
	switch x := a.(type) {
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !equalRaw(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, exists := y[k]
			if !exists || !equalRaw(xv, yv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
