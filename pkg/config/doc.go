// Package config loads typed configuration from defaults, an optional YAML
// file and the environment.
//
// It wraps `gopkg.in/yaml.v3`, `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11`. Load applies the layers in order,
// each overriding the previous one:
//
//  1. the values already present in the target struct (typically a
//     DefaultConfig constructor);
//  2. the YAML file passed with WithYAMLFile;
//  3. environment variables, after loading .env files.
//
// # Usage
//
//	type Config struct {
//	    Mode    string `env:"MODE" yaml:"reduction_mode"`
//	    Verbose bool   `env:"VERBOSE" yaml:"verbose"`
//	}
//
//	cfg := Config{Mode: "A-B"}
//	if err := config.Load(&cfg, config.WithPrefix("SPEX_"), config.WithYAMLFile(path)); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into struct.
//   - `ErrReadingFile`   – a requested .env or YAML file could not be read.
//   - `ErrParsingFile`   – the YAML file is malformed.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
package config
