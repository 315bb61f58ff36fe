package native

import "reflect"

// CoerceNumber narrows a raw numeric value to its natural native
// representation: every integer flavor becomes int, float32 widens to
// float64, and a float64 carrying an integral value collapses to int.
// Non-numeric values pass through unchanged. Setter resolution converts
// between numeric representations when a setter demands a different one, so
// narrowing here never strands a value.
func CoerceNumber(v any) any {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float32:
		return CoerceNumber(float64(n))
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
		return n
	default:
		return v
	}
}

// Int extracts an int from any numeric flavor.
func Int(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// Float64 extracts a float64 from any numeric flavor.
func Float64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// isNumeric reports whether a reflect kind is an integer or float flavor.
func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// nillable reports whether an untyped nil argument can satisfy a parameter
// of type t.
func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

// argMatches reports whether a runtime argument can be passed to a
// parameter of type param, either directly or through numeric conversion.
func argMatches(param reflect.Type, arg any) bool {
	if arg == nil {
		return nillable(param)
	}
	at := reflect.TypeOf(arg)
	if at.AssignableTo(param) {
		return true
	}
	return isNumeric(at.Kind()) && isNumeric(param.Kind())
}

// argValue produces the reflect.Value to pass for a matched argument,
// applying zero-value substitution for nil and numeric conversion where the
// parameter demands a different representation.
func argValue(param reflect.Type, arg any) reflect.Value {
	if arg == nil {
		return reflect.Zero(param)
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(param) {
		return v
	}
	return v.Convert(param)
}
