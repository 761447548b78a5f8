package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
	yamlFile string
}

// WithPrefix prepends prefix to every env tag, e.g. "SPEX_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files instead of the default ./.env.
// A missing file is an error. Already-set process variables are not overridden.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithYAMLFile decodes path into the target before environment overrides.
// An empty path is ignored.
func WithYAMLFile(path string) Option {
	return func(o *options) {
		o.yamlFile = path
	}
}

// Load populates v in three layers: the values v already holds, then the
// YAML file (if any), then environment variables. Only variables that are
// set replace a field, so env tags must not carry envDefault when a YAML
// layer is used.
//
// Example:
//
//	cfg := pipeline.DefaultConfig()
//	err := config.Load(&cfg,
//		config.WithPrefix("SPEX_"),
//		config.WithYAMLFile("reduce.yaml"),
//	)
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrReadingFile, err)
		}
	} else {
		// The default .env file is optional.
		_ = godotenv.Load()
	}

	if o.yamlFile != "" {
		data, err := os.ReadFile(o.yamlFile)
		if err != nil {
			return errors.Join(ErrReadingFile, err)
		}
		if err := yaml.Unmarshal(data, v); err != nil {
			return errors.Join(ErrParsingFile, fmt.Errorf("%s: %w", o.yamlFile, err))
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
