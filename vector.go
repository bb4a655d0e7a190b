package vecmath

import (
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/vecmath/distance"
)

// Vector is an immutable, fixed-dimension vector of float64 coordinates.
//
// Every operation that "changes" a vector returns a new Vector; the receiver
// and the operand are never modified. Vectors are safe for concurrent readers.
//
// The zero value has dimension 0. It is only meant as a decoding target;
// use New, From, FromAny or Parse to build a vector.
type Vector struct {
	coords []float64
}

// New returns a vector holding a copy of coords.
// It fails with ErrInvalidArgument if coords is empty.
func New(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, newError(KindInvalidConstruction, msgEmpty, nil)
	}
	return Vector{coords: slices.Clone(coords)}, nil
}

// MustNew is like New but panics on error.
func MustNew(coords ...float64) Vector {
	v, err := New(coords...)
	if err != nil {
		panic(err)
	}
	return v
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int { return len(v.coords) }

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []float64 { return slices.Clone(v.coords) }

// At returns the i-th coordinate. It panics if i is out of range.
func (v Vector) At(i int) float64 { return v.coords[i] }

// Equal reports whether v and w have the same coordinates in the same order.
func (v Vector) Equal(w Vector) bool { return slices.Equal(v.coords, w.coords) }

// String renders the vector as "Vector: (c0, c1, ..., cn-1)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector: (")
	for i, c := range v.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Plus returns the coordinate-wise sum of v and w.
//
// Dimensions are not validated: when they differ, coordinates are paired up
// to the shorter dimension and the rest are dropped. Use CheckDimension first
// if that matters to the caller.
func (v Vector) Plus(w Vector) Vector {
	return Vector{coords: distance.Add(v.coords, w.coords)}
}

// Minus returns the coordinate-wise difference v - w.
// Dimension handling is the same as for Plus.
func (v Vector) Minus(w Vector) Vector {
	return Vector{coords: distance.Sub(v.coords, w.coords)}
}

// TimesScalar returns v with every coordinate multiplied by c.
func (v Vector) TimesScalar(c float64) Vector {
	return Vector{coords: distance.Scale(v.coords, c)}
}

// Magnitude returns the Euclidean norm of v. It is 0 for the zero vector.
func (v Vector) Magnitude() float64 {
	return distance.Norm(v.coords)
}

// Normalized returns the unit vector pointing in the direction of v.
// It fails with ErrDegenerateOperation (KindZeroVectorNormalize) when the
// magnitude of v is exactly 0.
func (v Vector) Normalized() (Vector, error) {
	unit, ok := distance.NormalizeL2Copy(v.coords)
	if !ok {
		return Vector{}, newError(KindZeroVectorNormalize, msgNormalize, nil)
	}
	return Vector{coords: unit}, nil
}

// IsZero reports whether the magnitude of v is below the tolerance.
func (v Vector) IsZero(opts ...Option) bool {
	return v.Magnitude() < applyOptions(opts).tolerance
}

// Dot returns the dot product of v and w.
// Dimension handling is the same as for Plus.
func (v Vector) Dot(w Vector) float64 {
	return distance.Dot(v.coords, w.coords)
}

// CheckDimension returns *ErrDimensionMismatch if w does not have the
// dimension of v.
func (v Vector) CheckDimension(w Vector) error {
	if len(v.coords) != len(w.coords) {
		return &ErrDimensionMismatch{Expected: len(v.coords), Actual: len(w.coords)}
	}
	return nil
}

// DistanceTo returns the distance between v and w under metric m.
func (v Vector) DistanceTo(w Vector, m distance.Metric) (float64, error) {
	f, err := distance.Provider(m)
	if err != nil {
		return 0, err
	}
	return f(v.coords, w.coords), nil
}
