package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by construction and dimension errors.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateOperation is matched by operations that are undefined for
	// the zero vector.
	ErrDegenerateOperation = errors.New("degenerate operation")
)

// Kind discriminates the failures reported by *Error.
type Kind int

const (
	// KindInvalidConstruction reports empty or non-numeric coordinates.
	KindInvalidConstruction Kind = iota + 1
	// KindZeroVectorNormalize reports an attempt to normalize the zero vector.
	KindZeroVectorNormalize
	// KindZeroVectorAngle reports an angle computation involving the zero vector.
	KindZeroVectorAngle
	// KindInvalidUnit reports an unknown AngleUnit.
	KindInvalidUnit
)

func (k Kind) String() string {
	switch k {
	case KindInvalidConstruction:
		return "InvalidConstruction"
	case KindZeroVectorNormalize:
		return "ZeroVectorNormalize"
	case KindZeroVectorAngle:
		return "ZeroVectorAngle"
	case KindInvalidUnit:
		return "InvalidUnit"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

const (
	msgEmpty      = "coordinates must be nonempty"
	msgNotNumeric = "coordinates must be an iterable of numbers"
	msgNormalize  = "cannot normalize the zero vector"
	msgZeroAngle  = "cannot compute an angle with the zero vector"
)

// Error is a vector failure tagged with its Kind.
//
// errors.Is(err, ErrInvalidArgument) and errors.Is(err, ErrDegenerateOperation)
// report the failure class. The original underlying error (if any) can be
// accessed via errors.Unwrap.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil && e.Kind == KindInvalidConstruction {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches the sentinel of the error's class.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidConstruction || e.Kind == KindInvalidUnit
	case ErrDegenerateOperation:
		return e.Kind == KindZeroVectorNormalize || e.Kind == KindZeroVectorAngle
	default:
		return false
	}
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func newError(k Kind, msg string, cause error) *Error {
	return &Error{Kind: k, msg: msg, cause: cause}
}

// ErrDimensionMismatch indicates two vectors of different dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Is matches ErrInvalidArgument.
func (e *ErrDimensionMismatch) Is(target error) bool { return target == ErrInvalidArgument }
