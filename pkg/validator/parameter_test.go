package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spextract/pkg/validator"
)

func TestCheckParameter_Types(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		value   validator.Value
		allowed validator.Kinds
		wantErr bool
	}{
		{"int allowed", validator.Int(3), validator.Kinds{validator.KindInt}, false},
		{"float among several", validator.Float(1.5), validator.Kinds{validator.KindInt, validator.KindFloat}, false},
		{"none allowed", validator.None(), validator.Kinds{validator.KindString, validator.KindNone}, false},
		{"bool allowed", validator.Bool(true), validator.Kinds{validator.KindBool}, false},
		{"list allowed", validator.Of([]int{1, 2}), validator.Kinds{validator.KindList}, false},
		{"array allowed", validator.Array([]float64{1, 2}), validator.Kinds{validator.KindArray}, false},
		{"float rejected for int", validator.Float(1), validator.Kinds{validator.KindInt}, true},
		{"string rejected", validator.String("x"), validator.Kinds{validator.KindInt, validator.KindFloat}, true},
		{"none rejected", validator.None(), validator.Kinds{validator.KindBool}, true},
		{"empty allowed set rejects", validator.Int(1), nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.CheckParameter("caller", "param", tc.value, tc.allowed)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, validator.ErrTypeMismatch))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckParameter_TypeMismatchMessage(t *testing.T) {
	t.Parallel()

	err := validator.CheckParameter("trace_apertures", "fit_degree", validator.Float(2.5),
		validator.Kinds{validator.KindInt, validator.KindNone})
	require.Error(t, err)

	var pe *validator.ParameterError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "trace_apertures", pe.Caller)
	assert.Equal(t, "fit_degree", pe.Parameter)
	assert.Equal(t, "float", pe.Actual)
	assert.Equal(t, []string{"int", "none"}, pe.Allowed)
	assert.Equal(t,
		"parameter `fit_degree` of trace_apertures has type float; acceptable types are int, none",
		err.Error())
	assert.True(t, validator.IsParameterError(err))
}

func TestCheckParameter_UnknownGoType(t *testing.T) {
	t.Parallel()

	type exposure struct{}
	err := validator.CheckParameter("load_image", "files", validator.Of(exposure{}),
		validator.Kinds{validator.KindString, validator.KindList})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validator_test.exposure")
}

func TestCheckParameter_Dimensions(t *testing.T) {
	t.Parallel()

	image := validator.Array(make([]float64, 6), 2, 3)
	arrays := validator.Kinds{validator.KindArray}

	t.Run("matching dimension passes", func(t *testing.T) {
		assert.NoError(t, validator.CheckParameter("c", "img", image, arrays, validator.WithDimensions(2)))
	})

	t.Run("one of several dimensions passes", func(t *testing.T) {
		assert.NoError(t, validator.CheckParameter("c", "img", image, arrays, validator.WithDimensions(1, 2)))
	})

	t.Run("d+1 fails with dimension mismatch", func(t *testing.T) {
		err := validator.CheckParameter("c", "img", image, arrays, validator.WithDimensions(3))
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrDimensionMismatch))
		assert.False(t, errors.Is(err, validator.ErrTypeMismatch))
		assert.Equal(t, "parameter `img` of c has dimension 2; acceptable dimensions are 3", err.Error())
	})

	t.Run("single integer behaves like one-element set", func(t *testing.T) {
		single := validator.CheckParameter("c", "img", image, arrays, validator.WithDimensions(3))
		set := validator.CheckParameter("c", "img", image, arrays, validator.WithDimensions([]int{3}...))
		assert.Equal(t, single.Error(), set.Error())
	})

	t.Run("non-array kinds skip dimension checks", func(t *testing.T) {
		err := validator.CheckParameter("c", "n", validator.Int(4),
			validator.Kinds{validator.KindInt, validator.KindArray}, validator.WithDimensions(3))
		assert.NoError(t, err)

		err = validator.CheckParameter("c", "l", validator.Of([]float64{1, 2}),
			validator.Kinds{validator.KindList}, validator.WithDimensions(2))
		assert.NoError(t, err)
	})

	t.Run("empty dimension set is ignored", func(t *testing.T) {
		assert.NoError(t, validator.CheckParameter("c", "img", image, arrays, validator.WithDimensions()))
	})
}

func TestCheckParameter_AllowedValues(t *testing.T) {
	t.Parallel()

	modes := validator.Strings("A", "A-B")
	strs := validator.Kinds{validator.KindString}

	t.Run("member passes", func(t *testing.T) {
		assert.NoError(t, validator.CheckParameter("do_all_steps", "mode", validator.String("A-B"), strs,
			validator.WithAllowedValues(modes...)))
	})

	t.Run("non-member fails with value domain error", func(t *testing.T) {
		err := validator.CheckParameter("do_all_steps", "mode", validator.String("A-Sky"), strs,
			validator.WithAllowedValues(modes...))
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValueDomain))
		assert.Equal(t,
			"parameter `mode` of do_all_steps has a value of `A-Sky`; acceptable values are `A`, `A-B`",
			err.Error())
	})

	t.Run("int and float compare numerically", func(t *testing.T) {
		err := validator.CheckParameter("c", "deg", validator.Float(2), validator.Kinds{validator.KindFloat},
			validator.WithAllowedValues(validator.Int(1), validator.Int(2)))
		assert.NoError(t, err)
	})

	t.Run("type check runs before value domain", func(t *testing.T) {
		err := validator.CheckParameter("c", "mode", validator.Int(1), strs,
			validator.WithAllowedValues(modes...))
		assert.True(t, errors.Is(err, validator.ErrTypeMismatch))
	})

	t.Run("empty allowed set rejects", func(t *testing.T) {
		err := validator.CheckParameter("c", "mode", validator.String("A"), strs, validator.WithAllowedValues())
		assert.True(t, errors.Is(err, validator.ErrValueDomain))
	})
}

func TestCheckParameter_Idempotent(t *testing.T) {
	t.Parallel()

	v := validator.Array([]float64{1, 2, 3, 4}, 2, 2)
	opts := []validator.ParameterOption{validator.WithDimensions(1)}

	first := validator.CheckParameter("c", "img", v, validator.Kinds{validator.KindArray}, opts...)
	second := validator.CheckParameter("c", "img", v, validator.Kinds{validator.KindArray}, opts...)
	require.Error(t, first)
	assert.Equal(t, first, second)
}
