package validator

import (
	"fmt"
	"slices"
	"strings"
)

// RequiredString validates that a string is not blank.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    "required",
			Params:  map[string]any{"field": field},
		},
	}
}

// OneOf validates that value is one of options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", options),
			Code:    "one_of",
			Params: map[string]any{
				"field":   field,
				"value":   value,
				"options": options,
			},
		},
	}
}

// Positive validates that every value is strictly greater than zero.
func Positive[T Numeric](field string, values ...T) Rule {
	return InRange(field, values, ModeGt, 0)
}

// NonNegative validates that every value is greater than or equal to zero.
func NonNegative[T Numeric](field string, values ...T) Rule {
	return InRange(field, values, ModeGe, 0)
}

// InRange validates every element of values against bound with mode, using the
// same comparisons as CheckRange. A bound with the wrong arity for the mode
// always fails.
func InRange[T Numeric](field string, values []T, mode Mode, bound ...T) Rule {
	limits := make([]float64, len(bound))
	for i, b := range bound {
		limits[i] = float64(b)
	}

	message := "is out of range: " + mode.Describe(field, limits...)
	if len(limits) != mode.Sides() {
		message = fmt.Sprintf("has a %d-element bound for mode %s", len(limits), mode)
	}

	return Rule{
		Check: func() bool {
			if len(limits) != mode.Sides() {
				return false
			}
			for _, v := range values {
				if !mode.Test(float64(v), limits...) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
			Code:    "range." + string(mode),
			Params: map[string]any{
				"field": field,
				"mode":  string(mode),
				"bound": limits,
			},
		},
	}
}
