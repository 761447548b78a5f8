package pipeline_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spextract/pkg/pipeline"
)

func TestParseIndexString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []int
		err  error
	}{
		{"1-3,7", []int{1, 2, 3, 7}, nil},
		{" 12 ", []int{12}, nil},
		{"5-5", []int{5}, nil},
		{"9,1-2", []int{9, 1, 2}, nil},
		{"", nil, pipeline.ErrNoFiles},
		{"1,,2", nil, pipeline.ErrInvalidIndexString},
		{"3-1", nil, pipeline.ErrInvalidIndexString},
		{"a-b", nil, pipeline.ErrInvalidIndexString},
		{"-4", nil, pipeline.ErrInvalidIndexString},
		{"1-", nil, pipeline.ErrInvalidIndexString},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := pipeline.ParseIndexString(tc.in)
			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseIndexString_Limit(t *testing.T) {
	t.Parallel()

	got, err := pipeline.ParseIndexString(fmt.Sprintf("1-%d", pipeline.MaxIndexCount))
	require.NoError(t, err)
	assert.Len(t, got, pipeline.MaxIndexCount)

	for _, in := range []string{
		"0-2000000000",
		fmt.Sprintf("1-%d", pipeline.MaxIndexCount+1),
		fmt.Sprintf("1-%d,5", pipeline.MaxIndexCount),
		fmt.Sprintf("1-%d,1-2", pipeline.MaxIndexCount-1),
	} {
		_, err := pipeline.ParseIndexString(in)
		assert.ErrorIs(t, err, pipeline.ErrInvalidIndexString, in)
	}
}

func TestExpandFiles(t *testing.T) {
	t.Parallel()

	t.Run("index mode pads and wraps", func(t *testing.T) {
		cfg := pipeline.DefaultConfig()
		got, err := pipeline.ExpandFiles(cfg, "1-2,10")
		require.NoError(t, err)
		assert.Equal(t, []string{"spc00001.fits", "spc00002.fits", "spc00010.fits"}, got)
	})

	t.Run("filename mode splits on commas", func(t *testing.T) {
		cfg := pipeline.DefaultConfig()
		cfg.FileReadMode = pipeline.ReadFilename
		got, err := pipeline.ExpandFiles(cfg, "spc00001.a.fits, spc00002.b.fits,")
		require.NoError(t, err)
		assert.Equal(t, []string{"spc00001.a.fits", "spc00002.b.fits"}, got)
	})

	t.Run("filename mode with nothing", func(t *testing.T) {
		cfg := pipeline.DefaultConfig()
		cfg.FileReadMode = pipeline.ReadFilename
		_, err := pipeline.ExpandFiles(cfg, " , ")
		assert.ErrorIs(t, err, pipeline.ErrNoFiles)
	})

	t.Run("unknown mode", func(t *testing.T) {
		cfg := pipeline.DefaultConfig()
		cfg.FileReadMode = "glob"
		_, err := pipeline.ExpandFiles(cfg, "1")
		assert.ErrorIs(t, err, pipeline.ErrInvalidConfig)
	})
}

func TestGroupExposures(t *testing.T) {
	t.Parallel()

	files := []string{"a", "b", "c", "d"}

	t.Run("A-B pairs", func(t *testing.T) {
		got, err := pipeline.GroupExposures(pipeline.ReductionAB, files)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, got)
	})

	t.Run("A singletons", func(t *testing.T) {
		got, err := pipeline.GroupExposures(pipeline.ReductionA, files[:3])
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}}, got)
	})

	t.Run("A-B odd count", func(t *testing.T) {
		_, err := pipeline.GroupExposures(pipeline.ReductionAB, files[:3])
		require.Error(t, err)
		assert.ErrorIs(t, err, pipeline.ErrOddExposureCount)
		assert.Contains(t, err.Error(), "got 3")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := pipeline.GroupExposures(pipeline.ReductionA, nil)
		assert.ErrorIs(t, err, pipeline.ErrNoFiles)
	})
}
