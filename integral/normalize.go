package integral

import (
	"fmt"
	"math"
	"reflect"

	"github.com/amp-labs/amp-truth/errors"
)

// Normalize converts an integral input into a Value.
//
// Accepted inputs are nil, the signed integer types, uint8 through uint32,
// Char, named types over any of these, and pointers to any of them. A nil
// pointer to any accepted type normalizes to Absent. uint, uint64
// and uintptr are accepted when the value fits in an int64; larger values
// return ErrOutOfRange. Anything else returns ErrWrongType.
func Normalize(input any) (Value, error) {
	switch v := input.(type) {
	case nil:
		return Absent(), nil
	case int:
		return Of(int64(v)), nil
	case int8:
		return Of(int64(v)), nil
	case int16:
		return Of(int64(v)), nil
	case int32:
		return Of(int64(v)), nil
	case int64:
		return Of(v), nil
	case uint8:
		return Of(int64(v)), nil
	case uint16:
		return Of(int64(v)), nil
	case uint32:
		return Of(int64(v)), nil
	case Char:
		return OfChar(v), nil
	case Value:
		return v, nil
	}

	return normalizeReflect(reflect.ValueOf(input), input)
}

// normalizeReflect handles pointers and named integer types.
func normalizeReflect(val reflect.Value, input any) (Value, error) {
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if !isIntegralType(val.Type()) {
				return Absent(), fmt.Errorf("%w: %T", errors.ErrWrongType, input)
			}

			return Absent(), nil
		}

		val = val.Elem()
	}

	switch val.Type() {
	case reflect.TypeFor[Char]():
		return OfChar(Char(val.Uint())), nil
	case reflect.TypeFor[Value]():
		return val.Interface().(Value), nil //nolint:forcetypeassert
	}

	switch val.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Of(val.Int()), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return Of(int64(val.Uint())), nil //nolint:gosec
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u > math.MaxInt64 {
			return Absent(), fmt.Errorf("%w: %T %d does not fit in int64", errors.ErrOutOfRange, input, u)
		}

		return Of(int64(u)), nil
	default:
		return Absent(), fmt.Errorf("%w: %T is not an integral type", errors.ErrWrongType, input)
	}
}

// isIntegralType reports whether a nil pointer of type t could ever have held
// an integral value. Interface element types are accepted since a nil *any
// is indistinguishable from a nil object reference.
func isIntegralType(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == reflect.TypeFor[Value]() {
		return true
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Interface:
		return true
	default:
		return false
	}
}
