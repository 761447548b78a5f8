// Package validator provides the precondition checks used at the top of every
// extraction stage: parameter kind/dimension/value-domain checks, numeric range
// checks with eight comparison modes, path and file resolution, and a small set
// of composable rules for validating configuration blocks.
//
// # Architecture
//
// Parameters are described by Value, a closed tagged union over the shapes the
// pipeline accepts (none, bool, int, float, string, list, array). Checks never
// inspect Go type names at runtime; callers lift their arguments with the Value
// constructors or with Of for plain Go values.
//
// Core building blocks:
//   - Value / Kind        – tagged parameter value and its kind tag
//   - CheckParameter      – kind, dimensionality and value-domain check
//   - CheckRange / Mode   – element-wise bound checks (gt, ge, lt, le, gtlt, gtle, gelt, gele)
//   - CheckPath / CheckFiles – filesystem existence and glob resolution
//   - Rule / Apply        – composable checks aggregated into ValidationErrors
//
// The package holds no state; every function is safe for concurrent use.
//
// # Usage
//
//	if err := validator.CheckParameter("trace_apertures", "fit_degree",
//	    validator.Int(deg), validator.Kinds{validator.KindInt}); err != nil {
//	    return err
//	}
//
//	if err := validator.CheckRange(validator.Of(radii), validator.Of([]float64{0, 10}),
//	    validator.ModeGtLe, "aperture_radii"); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Checks fail fast with structured errors (*ParameterError, *ShapeError,
// *RangeError) that unwrap to the sentinels in errors.go, so callers can use
// errors.Is to classify them:
//
//	if errors.Is(err, validator.ErrOutOfRange) {
//	    // at least one element violated the bound
//	}
//
// Apply collects failed rules into ValidationErrors, which matches
// ErrValidationFailed.
package validator
