package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingFile is returned when a requested .env or YAML file cannot be read
	ErrReadingFile = errors.New("failed to read config file")

	// ErrParsingFile is returned when a YAML config file is malformed
	ErrParsingFile = errors.New("failed to parse config file")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
