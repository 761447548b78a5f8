package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/spextract/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.RequiredString("prefix", "spc").Check())
	assert.False(t, validator.RequiredString("prefix", "").Check())
	assert.False(t, validator.RequiredString("prefix", "  \t").Check())

	rule := validator.RequiredString("prefix", "")
	assert.Equal(t, "prefix", rule.Error.Field)
	assert.Equal(t, "required", rule.Error.Code)
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	rule := validator.OneOf("reduction_mode", "A-B", []string{"A", "A-B"})
	assert.True(t, rule.Check())

	rule = validator.OneOf("reduction_mode", "A-Sky", []string{"A", "A-B"})
	assert.False(t, rule.Check())
	assert.Equal(t, "must be one of: [A A-B]", rule.Error.Message)
	assert.Equal(t, "A-Sky", rule.Error.Params["value"])
}

func TestPositiveAndNonNegative(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Positive("step", 5).Check())
	assert.False(t, validator.Positive("step", 0).Check())
	assert.True(t, validator.Positive("radii", 0.5, 1.0, 2.5).Check())
	assert.False(t, validator.Positive("radii", 0.5, -1.0).Check())
	assert.True(t, validator.Positive[float64]("empty").Check())

	assert.True(t, validator.NonNegative("fitdeg", 0).Check())
	assert.False(t, validator.NonNegative("fitdeg", -1).Check())
	assert.Equal(t, "is out of range: 0 <= fitdeg", validator.NonNegative("fitdeg", -1).Error.Message)
}

func TestInRange(t *testing.T) {
	t.Parallel()

	t.Run("passes when every element satisfies the mode", func(t *testing.T) {
		rule := validator.InRange("centhresh", []float64{0.1, 0.9}, validator.ModeGtLt, 0, 1)
		assert.True(t, rule.Check())
	})

	t.Run("fails when one element violates the mode", func(t *testing.T) {
		rule := validator.InRange("centhresh", []float64{0.1, 1}, validator.ModeGtLt, 0, 1)
		assert.False(t, rule.Check())
		assert.Equal(t, "is out of range: 0 < centhresh < 1", rule.Error.Message)
		assert.Equal(t, "range.gtlt", rule.Error.Code)
	})

	t.Run("wrong bound arity always fails", func(t *testing.T) {
		rule := validator.InRange("x", []int{5}, validator.ModeGeLe, 0)
		assert.False(t, rule.Check())
		assert.Equal(t, "has a 1-element bound for mode gele", rule.Error.Message)
	})

	t.Run("agrees with CheckRange", func(t *testing.T) {
		values := []int{1, 2, 3}
		for _, mode := range validator.Modes {
			bound := []int{2}
			if mode.Sides() == 2 {
				bound = []int{1, 3}
			}
			ruleOK := validator.InRange("v", values, mode, bound...).Check()
			checkErr := validator.CheckRange(validator.Of(values), validator.Of(bound), mode, "v")
			assert.Equal(t, ruleOK, checkErr == nil, "mode %s", mode)
		}
	})
}
