package vecmath

import (
	"fmt"
	"math"
)

// AngleUnit selects the unit returned by AngleWith.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return fmt.Sprintf("Unknown(%d)", int(u))
	}
}

// AngleWith returns the angle between v and w in the given unit.
//
// If either vector is the zero vector it fails with ErrDegenerateOperation
// (KindZeroVectorAngle); the underlying normalization error is available
// via errors.Unwrap. A unit other than Radians or Degrees fails with
// ErrInvalidArgument (KindInvalidUnit).
func (v Vector) AngleWith(w Vector, unit AngleUnit) (float64, error) {
	if unit != Radians && unit != Degrees {
		return 0, newError(KindInvalidUnit, "unknown angle unit: "+unit.String(), nil)
	}
	cos, err := v.cosine(w)
	if err != nil {
		return 0, err
	}

	rad := math.Acos(cos)
	if unit == Degrees {
		return rad * 180 / math.Pi, nil
	}
	return rad, nil
}

// cosine returns the cosine of the angle between v and w, clamped to [-1, 1].
func (v Vector) cosine(w Vector) (float64, error) {
	u1, err := v.Normalized()
	if err != nil {
		return 0, angleError(err)
	}
	u2, err := w.Normalized()
	if err != nil {
		return 0, angleError(err)
	}
	return max(-1, min(1, u1.Dot(u2))), nil
}

func angleError(err error) error {
	if IsKind(err, KindZeroVectorNormalize) {
		return newError(KindZeroVectorAngle, msgZeroAngle, err)
	}
	return err
}

// IsOrthogonalTo reports whether |v·w| is below the tolerance.
func (v Vector) IsOrthogonalTo(w Vector, opts ...Option) bool {
	return math.Abs(v.Dot(w)) < applyOptions(opts).tolerance
}

// IsParallelTo reports whether v and w are parallel: either one is the zero
// vector, or the angle between them is 0 or π.
//
// The angle test is done on its cosine: the vectors are parallel when
// 1-|cos θ| is below the tolerance.
func (v Vector) IsParallelTo(w Vector, opts ...Option) bool {
	o := applyOptions(opts)
	if v.Magnitude() < o.tolerance || w.Magnitude() < o.tolerance {
		return true
	}
	cos, err := v.cosine(w)
	if err != nil {
		// unreachable: both magnitudes are at least the (positive) tolerance
		return true
	}
	return 1-math.Abs(cos) < o.tolerance
}
