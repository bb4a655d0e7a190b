package vecmath

// DefaultTolerance is the tolerance used by IsZero, IsOrthogonalTo and
// IsParallelTo when no WithTolerance option is given.
const DefaultTolerance = 1e-10

type options struct {
	tolerance float64
}

// Option configures the tolerance-based predicates.
type Option func(*options)

// WithTolerance overrides DefaultTolerance.
//
// Non-positive values are ignored.
func WithTolerance(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.tolerance = eps
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{tolerance: DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
