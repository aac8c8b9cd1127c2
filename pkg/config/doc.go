// Package config loads typed configuration structs from the process
// environment or from a YAML file.
//
// Environment loading wraps github.com/caarlos0/env/v11 and
// github.com/joho/godotenv: the default `.env` file in the working directory is
// read once (if present), then the struct is parsed from `env` tags. Each
// configuration type is parsed at most once per process and served from an
// in-memory cache afterwards.
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// File loading reads a YAML document with gopkg.in/yaml.v3 on top of the
// struct's `envDefault` values, so keys missing from the file keep their
// defaults. File-loaded structs are not cached.
//
//	if err := config.LoadFile("./config.yml", &cfg); err != nil {
//		return err
//	}
//
// Sentinel errors (ErrParsingConfig, ErrReadingConfigFile, ...) can be compared
// with errors.Is. ResetCache clears the cache between tests.
package config
