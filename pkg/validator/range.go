package validator

import "strings"

// Mode selects the comparison applied by CheckRange.
type Mode string

const (
	ModeGt   Mode = "gt"   // v > bound
	ModeGe   Mode = "ge"   // v >= bound
	ModeLt   Mode = "lt"   // v < bound
	ModeLe   Mode = "le"   // v <= bound
	ModeGtLt Mode = "gtlt" // lower < v < upper
	ModeGtLe Mode = "gtle" // lower < v <= upper
	ModeGeLt Mode = "gelt" // lower <= v < upper
	ModeGeLe Mode = "gele" // lower <= v <= upper
)

// Modes lists every recognized comparison mode.
var Modes = []Mode{ModeGt, ModeGe, ModeLt, ModeLe, ModeGtLt, ModeGtLe, ModeGeLt, ModeGeLe}

func modeValues() []Value {
	vs := make([]Value, len(Modes))
	for i, m := range Modes {
		vs[i] = String(string(m))
	}
	return vs
}

// ParseMode converts a mode tag into a Mode.
func ParseMode(s string) (Mode, error) {
	if err := CheckParameter("ParseMode", "mode", String(s), Kinds{KindString},
		WithAllowedValues(modeValues()...)); err != nil {
		return "", err
	}
	return Mode(s), nil
}

// Sides returns the number of bound elements the mode needs, or 0 for an
// unrecognized mode.
func (m Mode) Sides() int {
	switch m {
	case ModeGt, ModeGe, ModeLt, ModeLe:
		return 1
	case ModeGtLt, ModeGtLe, ModeGeLt, ModeGeLe:
		return 2
	default:
		return 0
	}
}

// Test reports whether v satisfies the mode. For single-sided modes only
// bound[0] is used; for double-sided modes bound is (lower, upper).
func (m Mode) Test(v float64, bound ...float64) bool {
	if len(bound) < m.Sides() || m.Sides() == 0 {
		return false
	}
	switch m {
	case ModeGt:
		return v > bound[0]
	case ModeGe:
		return v >= bound[0]
	case ModeLt:
		return v < bound[0]
	case ModeLe:
		return v <= bound[0]
	case ModeGtLt:
		return v > bound[0] && v < bound[1]
	case ModeGtLe:
		return v > bound[0] && v <= bound[1]
	case ModeGeLt:
		return v >= bound[0] && v < bound[1]
	default:
		return v >= bound[0] && v <= bound[1]
	}
}

// Describe renders the bound as an inequality over name, for example
// "0 <= x <= 10" for gele or "x < 5" for lt.
func (m Mode) Describe(name string, bound ...float64) string {
	var lower, upper string
	at := func(i int) string {
		if i < len(bound) {
			return formatFloat(bound[i])
		}
		return "?"
	}

	switch m {
	case ModeGt:
		lower = at(0) + " <"
	case ModeGe:
		lower = at(0) + " <="
	case ModeLt:
		upper = "< " + at(0)
	case ModeLe:
		upper = "<= " + at(0)
	case ModeGtLt:
		lower, upper = at(0)+" <", "< "+at(1)
	case ModeGtLe:
		lower, upper = at(0)+" <", "<= "+at(1)
	case ModeGeLt:
		lower, upper = at(0)+" <=", "< "+at(1)
	case ModeGeLe:
		lower, upper = at(0)+" <=", "<= "+at(1)
	}

	parts := make([]string, 0, 3)
	if lower != "" {
		parts = append(parts, lower)
	}
	parts = append(parts, name)
	if upper != "" {
		parts = append(parts, upper)
	}
	return strings.Join(parts, " ")
}

var numericKinds = Kinds{KindInt, KindFloat, KindList, KindArray}

// CheckRange verifies that every element of values satisfies mode against
// bound. Single-sided modes need a one-element bound, double-sided modes a
// (lower, upper) pair. An empty name is reported as "values".
//
// Example:
//
//	err := validator.CheckRange(validator.Float(fwhm), validator.Of([]float64{0, 5}),
//	    validator.ModeGtLe, "fwhm")
func CheckRange(values, bound Value, mode Mode, name string) error {
	const caller = "CheckRange"

	if err := CheckParameter(caller, "values", values, numericKinds); err != nil {
		return err
	}
	if err := CheckParameter(caller, "bound", bound, numericKinds); err != nil {
		return err
	}
	if err := CheckParameter(caller, "mode", String(string(mode)), Kinds{KindString},
		WithAllowedValues(modeValues()...)); err != nil {
		return err
	}

	if name == "" {
		name = "values"
	}

	limits, ok := bound.Floats()
	if !ok {
		return nonNumericElements(caller, "bound", bound)
	}
	if want := mode.Sides(); len(limits) != want {
		return &ShapeError{Name: name, Mode: mode, Want: want, Got: len(limits)}
	}

	data, ok := values.Floats()
	if !ok {
		return nonNumericElements(caller, "values", values)
	}

	return checkFloats(name, data, mode, limits)
}

func checkFloats(name string, data []float64, mode Mode, limits []float64) error {
	passed := 0
	for _, v := range data {
		if mode.Test(v, limits...) {
			passed++
		}
	}
	if passed != len(data) {
		return &RangeError{
			Name:       name,
			Mode:       mode,
			Bound:      limits,
			Violations: len(data) - passed,
			Total:      len(data),
		}
	}
	return nil
}

func nonNumericElements(caller, name string, v Value) error {
	return &ParameterError{
		Reason:    ErrTypeMismatch,
		Caller:    caller,
		Parameter: name,
		Actual:    v.TypeName() + " with non-numeric elements",
		Allowed:   numericKinds.Names(),
	}
}
