package config

import "math"

// Scalar is the closed set of types a Value can be converted to.
type Scalar interface {
	int32 | int64 | float32 | float64 | string
}

// Native is the closed set of Go types FromNative accepts.
type Native interface {
	Scalar | []byte
}

// Convert returns v as T when v's kind matches T's category, and fallback
// otherwise. Integers never convert to floating point targets or back, and a
// number outside the range of a 32-bit target yields the fallback.
//
//	name := config.Convert(store.GetValue("/logfile"), "suzu.log")
func Convert[T Scalar](v Value, fallback T) T {
	var out any
	switch any(fallback).(type) {
	case int32:
		i, ok := v.raw.(int64)
		if v.kind != KindInt || !ok || i < math.MinInt32 || i > math.MaxInt32 {
			return fallback
		}
		out = int32(i)
	case int64:
		i, ok := v.raw.(int64)
		if v.kind != KindInt || !ok {
			return fallback
		}
		out = i
	case float32:
		f, ok := v.raw.(float64)
		if v.kind != KindFloat || !ok || math.Abs(f) > math.MaxFloat32 {
			return fallback
		}
		out = float32(f)
	case float64:
		f, ok := v.raw.(float64)
		if v.kind != KindFloat || !ok {
			return fallback
		}
		out = f
	case string:
		s, ok := v.raw.(string)
		if v.kind != KindString || !ok {
			return fallback
		}
		out = s
	default:
		return fallback
	}
	return out.(T)
}

// FromNative wraps a native scalar into a Value. Byte slices are stored as
// text.
func FromNative[T Native](v T) Value {
	switch x := any(v).(type) {
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return String(x)
	case []byte:
		return String(string(x))
	default:
		return Discarded()
	}
}
