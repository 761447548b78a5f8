package pipeline_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spextract/pkg/pipeline"
	"github.com/dmitrymomot/spextract/pkg/validator"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, pipeline.DefaultConfig().Validate())
}

func TestConfig_ValidateCollectsAllProblems(t *testing.T) {
	t.Parallel()

	cfg := pipeline.DefaultConfig()
	cfg.ReductionMode = "A-Sky"
	cfg.Trace.StepSize = 0
	cfg.Trace.FitDegree = -1
	cfg.Parameters.ApertureRadii = []float64{1, -0.5}
	cfg.Parameters.BGWidth = -2

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, validator.ErrValidationFailed))

	verrs := validator.ExtractValidationErrors(err)
	assert.ElementsMatch(t, []string{
		"reduction_mode",
		"trace.step_size",
		"trace.fit_degree",
		"parameters.aperture_radii",
		"parameters.bg_width",
	}, verrs.Fields())
	assert.Equal(t, []string{"is out of range: 0 < trace.step_size"}, verrs.Get("trace.step_size"))
}

func TestConfig_ValidateModes(t *testing.T) {
	t.Parallel()

	t.Run("index mode needs a prefix and width", func(t *testing.T) {
		cfg := pipeline.DefaultConfig()
		cfg.Prefix = " "
		cfg.IndexWidth = 0
		verrs := validator.ExtractValidationErrors(cfg.Validate())
		assert.True(t, verrs.Has("prefix"))
		assert.True(t, verrs.Has("index_width"))
	})

	t.Run("filename mode ignores prefix", func(t *testing.T) {
		cfg := pipeline.DefaultConfig()
		cfg.FileReadMode = pipeline.ReadFilename
		cfg.Prefix = ""
		cfg.IndexWidth = 0
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown file read mode", func(t *testing.T) {
		cfg := pipeline.DefaultConfig()
		cfg.FileReadMode = "glob"
		assert.True(t, validator.ExtractValidationErrors(cfg.Validate()).Has("file_read_mode"))
	})
}

func TestConfig_ValidateApertures(t *testing.T) {
	t.Parallel()

	t.Run("auto needs a whole aperture count", func(t *testing.T) {
		cfg := pipeline.DefaultConfig()
		cfg.Apertures.Positions = []float64{1.5}
		assert.True(t, validator.ExtractValidationErrors(cfg.Validate()).Has("apertures.positions"))
	})

	t.Run("guess accepts positions", func(t *testing.T) {
		cfg := pipeline.DefaultConfig()
		cfg.Apertures.Method = pipeline.MethodGuess
		cfg.Apertures.Positions = []float64{3.7, 11.2}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("positions required", func(t *testing.T) {
		cfg := pipeline.DefaultConfig()
		cfg.Apertures.Method = pipeline.MethodFixed
		cfg.Apertures.Positions = nil
		assert.True(t, validator.ExtractValidationErrors(cfg.Validate()).Has("apertures.positions"))
	})
}

func TestConfig_ValidateOrders(t *testing.T) {
	t.Parallel()

	cfg := pipeline.DefaultConfig()
	cfg.Orders.Include = []int{3, 4}
	verrs := validator.ExtractValidationErrors(cfg.Validate())
	assert.True(t, verrs.Has("orders"))

	cfg.Orders.IncludeAll = false
	assert.NoError(t, cfg.Validate())

	cfg.Orders.Include = []int{0}
	assert.True(t, validator.ExtractValidationErrors(cfg.Validate()).Has("orders.include"))
}

func TestConfig_ValidateQA(t *testing.T) {
	t.Parallel()

	cfg := pipeline.DefaultConfig()
	cfg.Trace.PlotWidth = 0
	assert.NoError(t, cfg.Validate(), "plot size is unused while QA output is off")

	cfg.Trace.Plot = true
	assert.True(t, validator.ExtractValidationErrors(cfg.Validate()).Has("trace.qa_plot_size"))
}

func TestConfig_ValidateBackgroundDegree(t *testing.T) {
	t.Parallel()

	cfg := pipeline.DefaultConfig()
	cfg.Parameters.BGFitDegree = 10
	verrs := validator.ExtractValidationErrors(cfg.Validate())
	assert.Equal(t, []string{"is out of range: 0 <= parameters.bg_fit_degree <= 9"}, verrs.Get("parameters.bg_fit_degree"))
}
