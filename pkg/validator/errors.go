package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy for precondition checks. All of them are fatal to the calling
// operation and are never recovered inside this package.
var (
	// ErrValidationFailed is matched by ValidationErrors returned from Apply.
	ErrValidationFailed = errors.New("validation failed")

	// ErrTypeMismatch is returned when a value's kind is not in the allowed set.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDimensionMismatch is returned when an array's dimensionality is not allowed.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrValueDomain is returned when a value is not one of the admissible values.
	ErrValueDomain = errors.New("value not in allowed set")

	// ErrShapeMismatch is returned when a bound has the wrong number of elements for a mode.
	ErrShapeMismatch = errors.New("bound shape mismatch")

	// ErrOutOfRange is returned when at least one value violates a range check.
	ErrOutOfRange = errors.New("value out of range")

	// ErrPathNotFound is returned when a path does not exist.
	ErrPathNotFound = errors.New("path does not exist")

	// ErrFileNotFound is returned when a file pattern matches nothing.
	ErrFileNotFound = errors.New("file not found")

	// ErrAmbiguousFile is returned when a file pattern matches more than one file.
	ErrAmbiguousFile = errors.New("more than one file matches")
)

// ParameterError describes a failed CheckParameter call.
// Reason is one of ErrTypeMismatch, ErrDimensionMismatch or ErrValueDomain.
type ParameterError struct {
	Reason    error
	Caller    string
	Parameter string
	Actual    string
	Allowed   []string
}

func (e *ParameterError) Error() string {
	switch e.Reason {
	case ErrDimensionMismatch:
		return fmt.Sprintf("parameter `%s` of %s has dimension %s; acceptable dimensions are %s",
			e.Parameter, e.Caller, e.Actual, strings.Join(e.Allowed, ", "))
	case ErrValueDomain:
		quoted := make([]string, len(e.Allowed))
		for i, v := range e.Allowed {
			quoted[i] = "`" + v + "`"
		}
		return fmt.Sprintf("parameter `%s` of %s has a value of `%s`; acceptable values are %s",
			e.Parameter, e.Caller, e.Actual, strings.Join(quoted, ", "))
	default:
		return fmt.Sprintf("parameter `%s` of %s has type %s; acceptable types are %s",
			e.Parameter, e.Caller, e.Actual, strings.Join(e.Allowed, ", "))
	}
}

func (e *ParameterError) Unwrap() error {
	return e.Reason
}

// ShapeError reports a bound whose element count does not match its mode.
type ShapeError struct {
	Name string
	Mode Mode
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	if e.Want == 1 {
		return fmt.Sprintf("bound for `%s` with mode %s should be a single value, got %d elements", e.Name, e.Mode, e.Got)
	}
	return fmt.Sprintf("bound for `%s` with mode %s should be two elements, got %d", e.Name, e.Mode, e.Got)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// RangeError reports values that violate a bound.
// Violations counts the elements that failed the comparison out of Total.
type RangeError struct {
	Name       string
	Mode       Mode
	Bound      []float64
	Violations int
	Total      int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("`%s` is out of range: %s", e.Name, e.Mode.Describe(e.Name, e.Bound...))
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// IsParameterError reports whether err is, or wraps, a *ParameterError.
func IsParameterError(err error) bool {
	var pe *ParameterError
	return errors.As(err, &pe)
}
