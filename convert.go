package vecmath

import (
	"fmt"
	"reflect"
)

// Number is the set of element types accepted by From.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// From converts coords to float64 and returns the resulting vector.
func From[T Number](coords []T) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, newError(KindInvalidConstruction, msgEmpty, nil)
	}
	out := make([]float64, len(coords))
	for i, c := range coords {
		out[i] = float64(c)
	}
	return Vector{coords: out}, nil
}

// FromAny builds a vector from a slice or array of numbers, or from a Vector.
//
// Any other input, including nil and slices of non-numeric elements, fails
// with ErrInvalidArgument and the message "coordinates must be an iterable
// of numbers". Empty sequences fail with "coordinates must be nonempty".
func FromAny(x any) (Vector, error) {
	switch c := x.(type) {
	case Vector:
		if c.Dimension() == 0 {
			return Vector{}, newError(KindInvalidConstruction, msgEmpty, nil)
		}
		return c, nil
	case []float64:
		return New(c...)
	case []float32:
		return From(c)
	case []int:
		return From(c)
	}

	rv := reflect.ValueOf(x)
	if !rv.IsValid() {
		return Vector{}, newError(KindInvalidConstruction, msgNotNumeric, nil)
	}
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return Vector{}, newError(KindInvalidConstruction, msgNotNumeric,
			fmt.Errorf("got %T", x))
	}
	if rv.Len() == 0 {
		return Vector{}, newError(KindInvalidConstruction, msgEmpty, nil)
	}

	out := make([]float64, rv.Len())
	for i := range out {
		f, ok := toFloat(rv.Index(i))
		if !ok {
			return Vector{}, newError(KindInvalidConstruction, msgNotNumeric,
				fmt.Errorf("element %d has type %s", i, rv.Index(i).Type()))
		}
		out[i] = f
	}
	return Vector{coords: out}, nil
}

func toFloat(v reflect.Value) (float64, bool) {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
