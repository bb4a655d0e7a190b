// Package vecmath provides an immutable, fixed-dimension float64 vector.
//
// A Vector is built once from a non-empty sequence of coordinates and never
// changes afterwards. Every operation returns a new Vector or a scalar.
//
// # Quick Start
//
//	v, _ := vecmath.New(1, -1, 2)
//	w, _ := vecmath.New(-1, 1, 1)
//
//	v.Plus(w)               // Vector: (0, 0, 3)
//	v.Minus(w)              // Vector: (2, -2, 1)
//	v.Dot(w)                // 0
//	v.IsOrthogonalTo(w)     // true
//	v.AngleWith(w, vecmath.Degrees)
//
// # Errors
//
// Failures carry a Kind and match one of two sentinels:
//
//	_, err := vecmath.New()
//	errors.Is(err, vecmath.ErrInvalidArgument)     // true
//
//	_, err = zero.Normalized()
//	errors.Is(err, vecmath.ErrDegenerateOperation) // true
//	vecmath.IsKind(err, vecmath.KindZeroVectorNormalize)
//
// # Dimensions
//
// Plus, Minus and Dot do not validate dimensions. When they differ the
// coordinates are paired up to the shorter dimension. Call CheckDimension
// to get an explicit *ErrDimensionMismatch instead.
//
// # Tolerances
//
// IsZero, IsOrthogonalTo and IsParallelTo compare against DefaultTolerance
// (1e-10) unless WithTolerance is passed.
package vecmath
