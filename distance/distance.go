// Package distance provides float64 kernels over coordinate slices.
// Binary kernels pair coordinates up to the shorter of the two slices.
package distance

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Dot calculates the dot product of two vectors.
// Pairs coordinates up to the shorter length (caller's responsibility).
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))

	var ret float64
	for i := range n {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Pairs coordinates up to the shorter length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	n := min(len(a), len(b))

	var distance float64
	for i := range n {
		d := a[i] - b[i]
		distance += d * d
	}

	return distance
}

// L2 calculates the Euclidean distance between two vectors.
// Unlike sqrt(SquaredL2), it does not overflow for large coordinates.
func L2(a, b []float64) float64 {
	return Norm(Sub(a, b))
}

// NegativeDot returns -Dot(a, b), so that smaller means closer.
func NegativeDot(a, b []float64) float64 {
	return -Dot(a, b)
}

// Norm returns the Euclidean norm of v.
//
// Coordinates are scaled by the largest magnitude before squaring, so
// intermediate squares neither overflow nor underflow. The result is +Inf
// only if the norm itself exceeds math.MaxFloat64.
func Norm(v []float64) float64 {
	var scale float64
	for _, x := range v {
		scale = max(scale, math.Abs(x))
	}
	if scale == 0 || math.IsInf(scale, 1) || math.IsNaN(scale) {
		return scale
	}

	var sum float64
	for _, x := range v {
		r := x / scale
		sum += r * r
	}
	return scale * math.Sqrt(sum)
}

// Add returns a new slice holding a[i]+b[i].
func Add(a, b []float64) []float64 {
	n := min(len(a), len(b))
	dst := make([]float64, n)
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
	return dst
}

// Sub returns a new slice holding a[i]-b[i].
func Sub(a, b []float64) []float64 {
	n := min(len(a), len(b))
	dst := make([]float64, n)
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
	return dst
}

// Scale returns a new slice holding c*v[i].
func Scale(v []float64, c float64) []float64 {
	dst := make([]float64, len(v))
	for i, x := range v {
		dst[i] = c * x
	}
	return dst
}

// NormalizeL2Copy returns a normalized copy of src.
// Returns false if src is empty or has zero L2 norm.
func NormalizeL2Copy(src []float64) ([]float64, bool) {
	if len(src) == 0 {
		return nil, false
	}
	norm := Norm(src)
	if norm == 0 {
		return nil, false
	}
	dst := slices.Clone(src)
	for i := range dst {
		dst[i] /= norm
	}
	return dst, true
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricSquaredL2
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric resolves a metric by its case-insensitive name.
func ParseMetric(name string) (Metric, error) {
	for _, m := range []Metric{MetricL2, MetricSquaredL2, MetricDot} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown metric: %q", name)
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
// MetricDot maps to NegativeDot.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return L2, nil
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricDot:
		return NegativeDot, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

