package pipeline

import (
	"github.com/dmitrymomot/spextract/pkg/validator"
)

// File read modes.
const (
	ReadFilename = "filename"
	ReadIndex    = "index"
)

// Reduction modes.
const (
	ReductionA  = "A"
	ReductionAB = "A-B"
)

// Aperture location methods.
const (
	MethodAuto  = "auto"
	MethodGuess = "guess"
	MethodFixed = "fixed"
)

var (
	fileReadModes  = []string{ReadFilename, ReadIndex}
	reductionModes = []string{ReductionA, ReductionAB}
	apertureMethod = []string{MethodAuto, MethodGuess, MethodFixed}
)

// QA holds quality-assurance output settings. They are handed to the stages
// as-is.
type QA struct {
	Plot       bool    `env:"QA_PLOT" yaml:"qa_plot"`
	File       bool    `env:"QA_FILE" yaml:"qa_file"`
	PlotWidth  float64 `env:"QA_PLOT_WIDTH" yaml:"qa_plot_width"`
	PlotHeight float64 `env:"QA_PLOT_HEIGHT" yaml:"qa_plot_height"`
}

type LoadConfig struct {
	FlatFile    string `env:"FLAT_FILE" yaml:"flat_file"`
	WavecalFile string `env:"WAVECAL_FILE" yaml:"wavecal_file"`
	FlatField   bool   `env:"FLAT_FIELD" yaml:"flat_field"`
	Linearity   bool   `env:"LINEARITY_CORRECTION" yaml:"linearity_correction"`
	Verbose     bool   `env:"VERBOSE" yaml:"verbose"`
	QA          `yaml:",inline"`
}

type ProfilesConfig struct {
	Verbose bool `env:"VERBOSE" yaml:"verbose"`
	QA      `yaml:",inline"`
}

// AperturesConfig holds the aperture count (auto) or the positions along the
// slit in arcseconds (guess, fixed).
type AperturesConfig struct {
	Positions []float64 `env:"POSITIONS" envSeparator:"," yaml:"positions"`
	Method    string    `env:"METHOD" yaml:"method"`
	Verbose   bool      `env:"VERBOSE" yaml:"verbose"`
	QA        `yaml:",inline"`
}

type OrdersConfig struct {
	Include    []int `env:"INCLUDE" envSeparator:"," yaml:"include"`
	Exclude    []int `env:"EXCLUDE" envSeparator:"," yaml:"exclude"`
	IncludeAll bool  `env:"INCLUDE_ALL" yaml:"include_all"`
	Verbose    bool  `env:"VERBOSE" yaml:"verbose"`
	QA         `yaml:",inline"`
}

type TraceConfig struct {
	FitDegree         int     `env:"FIT_DEGREE" yaml:"fit_degree"`
	StepSize          int     `env:"STEP_SIZE" yaml:"step_size"`
	SummationWidth    int     `env:"SUMMATION_WIDTH" yaml:"summation_width"`
	CentroidThreshold int     `env:"CENTROID_THRESHOLD" yaml:"centroid_threshold"`
	FWHM              float64 `env:"FWHM" yaml:"fwhm"`
	Verbose           bool    `env:"VERBOSE" yaml:"verbose"`
	QA                `yaml:",inline"`
}

type ParametersConfig struct {
	ApertureRadii []float64 `env:"APERTURE_RADII" envSeparator:"," yaml:"aperture_radii"`
	PSFRadius     float64   `env:"PSF_RADIUS" yaml:"psf_radius"`
	BGRadius      float64   `env:"BG_RADIUS" yaml:"bg_radius"`
	BGWidth       float64   `env:"BG_WIDTH" yaml:"bg_width"`
	BGRegions     string    `env:"BG_REGIONS" yaml:"bg_regions"`
	BGFitDegree   int       `env:"BG_FIT_DEGREE" yaml:"bg_fit_degree"`
	QA            `yaml:",inline"`
}

type ExtractConfig struct {
	Verbose bool `env:"VERBOSE" yaml:"verbose"`
}

// Config is the batch extraction configuration. It is loaded once and never
// modified by the Runner. Env tags carry no defaults; start from
// DefaultConfig and layer YAML and environment on top with config.Load.
type Config struct {
	Prefix        string `env:"PREFIX" yaml:"prefix"`
	Suffix        string `env:"SUFFIX" yaml:"suffix"`
	IndexWidth    int    `env:"INDEX_WIDTH" yaml:"index_width"`
	FileReadMode  string `env:"FILE_READ_MODE" yaml:"file_read_mode"`
	ReductionMode string `env:"REDUCTION_MODE" yaml:"reduction_mode"`
	Verbose       bool   `env:"VERBOSE" yaml:"verbose"`

	Load       LoadConfig       `envPrefix:"LOAD_" yaml:"load"`
	Profiles   ProfilesConfig   `envPrefix:"PROFILES_" yaml:"profiles"`
	Apertures  AperturesConfig  `envPrefix:"APERTURES_" yaml:"apertures"`
	Orders     OrdersConfig     `envPrefix:"ORDERS_" yaml:"orders"`
	Trace      TraceConfig      `envPrefix:"TRACE_" yaml:"trace"`
	Parameters ParametersConfig `envPrefix:"PARAMETERS_" yaml:"parameters"`
	Extract    ExtractConfig    `envPrefix:"EXTRACT_" yaml:"extract"`
}

func defaultQA() QA {
	return QA{PlotWidth: 10, PlotHeight: 6}
}

// DefaultConfig returns a configuration for A-B pairs read by index.
func DefaultConfig() Config {
	return Config{
		Prefix:        "spc",
		Suffix:        ".fits",
		IndexWidth:    5,
		FileReadMode:  ReadIndex,
		ReductionMode: ReductionAB,
		Load: LoadConfig{
			FlatFile:    "flat.fits",
			WavecalFile: "wavecal.fits",
			FlatField:   true,
			Linearity:   true,
			QA:          defaultQA(),
		},
		Profiles: ProfilesConfig{QA: defaultQA()},
		Apertures: AperturesConfig{
			Positions: []float64{2},
			Method:    MethodAuto,
			QA:        defaultQA(),
		},
		Orders: OrdersConfig{IncludeAll: true, QA: defaultQA()},
		Trace: TraceConfig{
			FitDegree:         2,
			StepSize:          5,
			SummationWidth:    5,
			CentroidThreshold: 2,
			FWHM:              0.8,
			QA:                defaultQA(),
		},
		Parameters: ParametersConfig{
			ApertureRadii: []float64{1},
			PSFRadius:     1.5,
			BGRadius:      2.5,
			BGWidth:       4,
			BGFitDegree:   1,
			QA:            defaultQA(),
		},
	}
}

// Validate reports every invalid setting at once as validator.ValidationErrors.
func (c Config) Validate() error {
	rules := []validator.Rule{
		validator.OneOf("file_read_mode", c.FileReadMode, fileReadModes),
		validator.OneOf("reduction_mode", c.ReductionMode, reductionModes),

		validator.OneOf("apertures.method", c.Apertures.Method, apertureMethod),
		notEmpty("apertures.positions", len(c.Apertures.Positions)),

		ordersExclusive(c.Orders),
		validator.Positive("orders.include", c.Orders.Include...),
		validator.Positive("orders.exclude", c.Orders.Exclude...),

		validator.NonNegative("trace.fit_degree", c.Trace.FitDegree),
		validator.Positive("trace.step_size", c.Trace.StepSize),
		validator.Positive("trace.summation_width", c.Trace.SummationWidth),
		validator.Positive("trace.centroid_threshold", c.Trace.CentroidThreshold),
		validator.Positive("trace.fwhm", c.Trace.FWHM),

		notEmpty("parameters.aperture_radii", len(c.Parameters.ApertureRadii)),
		validator.Positive("parameters.aperture_radii", c.Parameters.ApertureRadii...),
		validator.NonNegative("parameters.psf_radius", c.Parameters.PSFRadius),
		validator.NonNegative("parameters.bg_radius", c.Parameters.BGRadius),
		validator.NonNegative("parameters.bg_width", c.Parameters.BGWidth),
		validator.InRange("parameters.bg_fit_degree", []int{c.Parameters.BGFitDegree}, validator.ModeGeLe, 0, 9),
	}

	if c.FileReadMode == ReadIndex {
		rules = append(rules,
			validator.RequiredString("prefix", c.Prefix),
			validator.Positive("index_width", c.IndexWidth),
		)
	}
	if c.Apertures.Method == MethodAuto {
		rules = append(rules, wholeNumbers("apertures.positions", c.Apertures.Positions))
	}

	for _, block := range []struct {
		name string
		qa   QA
	}{
		{"load", c.Load.QA},
		{"profiles", c.Profiles.QA},
		{"apertures", c.Apertures.QA},
		{"orders", c.Orders.QA},
		{"trace", c.Trace.QA},
		{"parameters", c.Parameters.QA},
	} {
		if block.qa.Plot || block.qa.File {
			rules = append(rules, validator.Positive(block.name+".qa_plot_size", block.qa.PlotWidth, block.qa.PlotHeight))
		}
	}

	return validator.Apply(rules...)
}

func notEmpty(field string, n int) validator.Rule {
	return validator.Rule{
		Check: func() bool { return n > 0 },
		Error: validator.ValidationError{
			Field:   field,
			Message: "must not be empty",
			Code:    "not_empty",
			Params:  map[string]any{"field": field},
		},
	}
}

func wholeNumbers(field string, values []float64) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			for _, v := range values {
				if v < 1 || v != float64(int(v)) {
					return false
				}
			}
			return true
		},
		Error: validator.ValidationError{
			Field:   field,
			Message: "must be a positive aperture count when method is auto",
			Code:    "aperture_count",
			Params:  map[string]any{"field": field},
		},
	}
}

func ordersExclusive(o OrdersConfig) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			set := 0
			if len(o.Include) > 0 {
				set++
			}
			if len(o.Exclude) > 0 {
				set++
			}
			if o.IncludeAll {
				set++
			}
			return set <= 1
		},
		Error: validator.ValidationError{
			Field:   "orders",
			Message: "only one of include, exclude or include_all may be set",
			Code:    "exclusive",
			Params:  map[string]any{"field": "orders"},
		},
	}
}
