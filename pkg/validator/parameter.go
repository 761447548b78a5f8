package validator

import (
	"slices"
	"strconv"
)

// ParameterOption adds an optional constraint to CheckParameter.
type ParameterOption func(*parameterCheck)

type parameterCheck struct {
	dims      []int
	values    []Value
	hasValues bool
}

// WithDimensions restricts array values to the given dimensionalities.
// It has no effect for values that are not arrays.
func WithDimensions(dims ...int) ParameterOption {
	return func(c *parameterCheck) {
		c.dims = append(c.dims, dims...)
	}
}

// WithAllowedValues restricts the value to a finite set. Supplying an empty
// set rejects every value.
func WithAllowedValues(values ...Value) ParameterOption {
	return func(c *parameterCheck) {
		c.values = append(c.values, values...)
		c.hasValues = true
	}
}

// CheckParameter verifies that v has one of the allowed kinds, then applies
// the dimension and value-domain constraints given as options, in that order.
// It returns nil when every check passes and a *ParameterError otherwise.
//
// Example:
//
//	err := validator.CheckParameter("select_orders", "include", validator.Of(orders),
//	    validator.Kinds{validator.KindList, validator.KindArray, validator.KindNone},
//	    validator.WithDimensions(1))
func CheckParameter(caller, name string, v Value, allowed Kinds, opts ...ParameterOption) error {
	var c parameterCheck
	for _, opt := range opts {
		opt(&c)
	}

	if !allowed.Contains(v.Kind()) {
		return &ParameterError{
			Reason:    ErrTypeMismatch,
			Caller:    caller,
			Parameter: name,
			Actual:    v.TypeName(),
			Allowed:   allowed.Names(),
		}
	}

	// Dimension constraints only apply to arrays; other kinds pass through.
	if v.Kind() == KindArray && len(c.dims) > 0 {
		ndim := v.Ndim()
		if !slices.Contains(c.dims, ndim) {
			allowedDims := make([]string, len(c.dims))
			for i, d := range c.dims {
				allowedDims[i] = strconv.Itoa(d)
			}
			return &ParameterError{
				Reason:    ErrDimensionMismatch,
				Caller:    caller,
				Parameter: name,
				Actual:    strconv.Itoa(ndim),
				Allowed:   allowedDims,
			}
		}
	}

	if c.hasValues && !containsValue(c.values, v) {
		allowedValues := make([]string, len(c.values))
		for i, a := range c.values {
			allowedValues[i] = a.String()
		}
		return &ParameterError{
			Reason:    ErrValueDomain,
			Caller:    caller,
			Parameter: name,
			Actual:    v.String(),
			Allowed:   allowedValues,
		}
	}

	return nil
}

func containsValue(set []Value, v Value) bool {
	for _, s := range set {
		if s.Equal(v) {
			return true
		}
	}
	return false
}
