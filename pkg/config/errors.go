package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when attempting to access a config that hasn't been loaded
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrReadingConfigFile is returned when the YAML config file cannot be read
	ErrReadingConfigFile = errors.New("failed to read config file")

	// ErrParsingConfigFile is returned when the YAML config file is malformed
	ErrParsingConfigFile = errors.New("failed to parse config file")
)
