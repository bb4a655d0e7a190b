// Package distance provides float64 vector kernels.
//
// Binary kernels never validate dimensions: they pair coordinates up to the
// shorter of the two slices and ignore the rest.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance (default)
//   - MetricSquaredL2: Squared Euclidean distance
//   - MetricDot: Negative dot product (smaller is closer)
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.Dot(a, b)
//	unit, ok := distance.NormalizeL2Copy(vec)
package distance
